package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(o *Offer) error
	Update(o *Offer) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*Offer, error)
	FindBySlug(slug string) (*Offer, error)
	ListActive(now time.Time) ([]Offer, error)
	ListAll() ([]Offer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(o *Offer) error {
	return r.db.Create(o).Error
}

func (r *repository) Update(o *Offer) error {
	return r.db.Save(o).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Offer{}, "id = ?", id).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Offer, error) {
	var o Offer
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindBySlug(slug string) (*Offer, error) {
	var o Offer
	if err := r.db.First(&o, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) ListActive(now time.Time) ([]Offer, error) {
	var offers []Offer
	if err := r.db.
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("sort_order ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *repository) ListAll() ([]Offer, error) {
	var offers []Offer
	if err := r.db.Order("sort_order ASC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

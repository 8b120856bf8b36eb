package procedure

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListActive() ([]Procedure, error)
	ListFeatured() ([]Procedure, error)
	FindByKey(key string) (*Procedure, error)
	FindByID(id uuid.UUID) (*Procedure, error)
	Create(p *Procedure) error
	Update(p *Procedure) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive() ([]Procedure, error) {
	var procedures []Procedure
	if err := r.db.
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&procedures).Error; err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *repository) ListFeatured() ([]Procedure, error) {
	var procedures []Procedure
	if err := r.db.
		Where("is_active = ? AND featured = ?", true, true).
		Order("sort_order ASC").
		Find(&procedures).Error; err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *repository) FindByKey(key string) (*Procedure, error) {
	var p Procedure
	if err := r.db.First(&p, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Procedure, error) {
	var p Procedure
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(p *Procedure) error {
	return r.db.Create(p).Error
}

func (r *repository) Update(p *Procedure) error {
	return r.db.Save(p).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Procedure{}, "id = ?", id).Error
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Procedure{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package team

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListPublished() ([]Member, error)
	ListAll() ([]Member, error)
	FindByID(id uuid.UUID) (*Member, error)
	FindBySlug(slug string) (*Member, error)
	SlugTaken(slug string) (bool, error)
	Create(m *Member) error
	Update(m *Member) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPublished() ([]Member, error) {
	var members []Member
	if err := r.db.
		Where("is_published = ?", true).
		Order("sort_order ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) ListAll() ([]Member, error) {
	var members []Member
	if err := r.db.Order("sort_order ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Member, error) {
	var m Member
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindBySlug(slug string) (*Member, error) {
	var m Member
	if err := r.db.First(&m, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) SlugTaken(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&Member{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Create(m *Member) error {
	return r.db.Create(m).Error
}

func (r *repository) Update(m *Member) error {
	return r.db.Save(m).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Member{}, "id = ?", id).Error
}

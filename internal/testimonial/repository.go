package testimonial

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	List() ([]View, error)
	ListPublished() ([]View, error)
	ListFeatured() ([]View, error)
	FindByID(id uuid.UUID) (*Testimonial, error)
	Create(t *Testimonial) error
	Update(t *Testimonial) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) viewQuery() *gorm.DB {
	return r.db.Model(&Testimonial{}).
		Select("testimonials.*, COALESCE(procedures.name, '') AS procedure_name").
		Joins("LEFT JOIN procedures ON procedures.id = testimonials.procedure_id").
		Order("testimonials.created_at DESC")
}

func (r *repository) List() ([]View, error) {
	var views []View
	if err := r.viewQuery().Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) ListPublished() ([]View, error) {
	var views []View
	if err := r.viewQuery().
		Where("testimonials.is_published = ?", true).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) ListFeatured() ([]View, error) {
	var views []View
	if err := r.viewQuery().
		Where("testimonials.is_published = ? AND testimonials.featured = ?", true, true).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Testimonial, error) {
	var t Testimonial
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(t *Testimonial) error {
	return r.db.Create(t).Error
}

func (r *repository) Update(t *Testimonial) error {
	return r.db.Save(t).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Testimonial{}, "id = ?", id).Error
}

package post

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Post) error
	Update(p *Post) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*Post, error)
	FindBySlug(slug string) (*Post, error)
	SlugTaken(slug string) (bool, error)
	ListRecent(limit int) ([]Post, error)
	ListAll() ([]Post, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Post) error {
	return r.db.Create(p).Error
}

func (r *repository) Update(p *Post) error {
	return r.db.Save(p).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Post{}, "id = ?", id).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Post, error) {
	var p Post
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindBySlug(slug string) (*Post, error) {
	var p Post
	if err := r.db.First(&p, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// SlugTaken checks drafts too, unlike FindBySlug which only sees published
// posts.
func (r *repository) SlugTaken(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListRecent(limit int) ([]Post, error) {
	var posts []Post
	if err := r.db.
		Where("is_published = ?", true).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) ListAll() ([]Post, error) {
	var posts []Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

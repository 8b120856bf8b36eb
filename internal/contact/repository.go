package contact

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(m *Message) error
	List(limit, offset int) ([]Message, error)
	FindByID(id uuid.UUID) (*Message, error)
	MarkRead(id uuid.UUID) error
	CountUnread() (int64, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(m *Message) error {
	return r.db.Create(m).Error
}

func (r *repository) List(limit, offset int) ([]Message, error) {
	var messages []Message
	if err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Message, error) {
	var m Message
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&Message{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *repository) CountUnread() (int64, error) {
	var count int64
	if err := r.db.Model(&Message{}).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Message{}, "id = ?", id).Error
}

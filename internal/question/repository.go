package question

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListActiveWithOptions() ([]Question, error)
	FindByID(id uuid.UUID) (*Question, error)
	Create(q *Question) error
	Update(q *Question) error
	Delete(id uuid.UUID) error
	Count() (int64, error)

	FindOption(id uuid.UUID) (*Option, error)
	CreateOption(o *Option) error
	UpdateOption(o *Option) error
	DeleteOption(id uuid.UUID) error
	PointsByOptionIDs(ids []uuid.UUID) (map[uuid.UUID]PointMap, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActiveWithOptions() ([]Question, error) {
	var questions []Question
	if err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *repository) Update(q *Question) error {
	return r.db.Save(q).Error
}

// Delete removes the question and its options in one transaction; the FK
// cascade is not relied on so sqlite test databases behave the same way.
func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Option{}, "question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Question{}, "id = ?", id).Error
	})
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) FindOption(id uuid.UUID) (*Option, error) {
	var o Option
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) CreateOption(o *Option) error {
	return r.db.Create(o).Error
}

func (r *repository) UpdateOption(o *Option) error {
	return r.db.Save(o).Error
}

func (r *repository) DeleteOption(id uuid.UUID) error {
	return r.db.Delete(&Option{}, "id = ?", id).Error
}

func (r *repository) PointsByOptionIDs(ids []uuid.UUID) (map[uuid.UUID]PointMap, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]PointMap{}, nil
	}

	var options []Option
	if err := r.db.Where("id IN ?", ids).Find(&options).Error; err != nil {
		return nil, err
	}

	points := make(map[uuid.UUID]PointMap, len(options))
	for _, o := range options {
		points[o.ID] = o.Points
	}
	return points, nil
}

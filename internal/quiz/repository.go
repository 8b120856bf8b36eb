package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Record persists the submission and its answers as one transaction.
	// Either everything lands or nothing does.
	Record(sub *Submission, answers []*SubmissionAnswer) error
	MarkNotified(id uuid.UUID) error
	FindByID(id uuid.UUID) (*Submission, error)
	List(limit, offset int) ([]Submission, error)
	ListAnswers(submissionID uuid.UUID) ([]AnswerDetail, error)
	ListAll() ([]Submission, error)
	Count() (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Record(sub *Submission, answers []*SubmissionAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		for i := range answers {
			answers[i].SubmissionID = sub.ID
		}
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *repository) MarkNotified(id uuid.UUID) error {
	return r.db.Model(&Submission{}).
		Where("id = ?", id).
		Update("notification_sent", true).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Submission, error) {
	var sub Submission
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) List(limit, offset int) ([]Submission, error) {
	var subs []Submission
	if err := r.db.
		Order("completed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *repository) ListAnswers(submissionID uuid.UUID) ([]AnswerDetail, error) {
	var details []AnswerDetail
	if err := r.db.
		Table("submission_answers").
		Select("submission_answers.*, questions.prompt AS prompt, questions.category AS category").
		Joins("JOIN questions ON questions.id = submission_answers.question_id").
		Where("submission_answers.submission_id = ?", submissionID).
		Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *repository) ListAll() ([]Submission, error) {
	var subs []Submission
	if err := r.db.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Submission{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

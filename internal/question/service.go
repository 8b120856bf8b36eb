package question

import (
	"context"
	"errors"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/cache"
	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("option not found")
)

const (
	bankCacheKey = "quiz:questions"
	bankCacheTTL = 5 * time.Minute
)

type Service interface {
	ListWithOptions(ctx context.Context) ([]Question, error)
	Get(ctx context.Context, id uuid.UUID) (*Question, error)
	Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateQuestionDTO) (*Question, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddOption(ctx context.Context, dto AddOptionDTO) (*Option, error)
	UpdateOption(ctx context.Context, id uuid.UUID, dto UpdateOptionDTO) (*Option, error)
	DeleteOption(ctx context.Context, id uuid.UUID) error

	PointsFor(ctx context.Context, optionIDs []uuid.UUID) (map[uuid.UUID]PointMap, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) ListWithOptions(ctx context.Context) ([]Question, error) {
	var cached []Question
	if s.cache.Get(ctx, bankCacheKey, &cached) {
		return cached, nil
	}

	questions, err := s.repo.ListActiveWithOptions()
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, bankCacheKey, questions, bankCacheTTL)
	return questions, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Question, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

func (s *service) Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q := Question{
		ID:            uuid.New(),
		Prompt:        dto.Prompt,
		Subtitle:      dto.Subtitle,
		Category:      dto.Category,
		Icon:          dto.Icon,
		FunFact:       dto.FunFact,
		IsMultiSelect: dto.IsMultiSelect,
		SortOrder:     dto.SortOrder,
		IsActive:      true,
	}
	for i, opt := range dto.Options {
		if err := opt.Points.Validate(); err != nil {
			return nil, err
		}
		q.Options = append(q.Options, Option{
			ID:        uuid.New(),
			Label:     opt.Label,
			Emoji:     opt.Emoji,
			Points:    opt.Points,
			SortOrder: i,
		})
	}

	if err := s.repo.Create(&q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	s.cache.Delete(ctx, bankCacheKey)
	log.WithField("question_id", q.ID.String()).Info("Question created")
	return &q, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	if dto.Prompt != nil {
		q.Prompt = *dto.Prompt
	}
	if dto.Subtitle != nil {
		q.Subtitle = *dto.Subtitle
	}
	if dto.Category != nil {
		q.Category = *dto.Category
	}
	if dto.Icon != nil {
		q.Icon = *dto.Icon
	}
	if dto.FunFact != nil {
		q.FunFact = *dto.FunFact
	}
	if dto.IsMultiSelect != nil {
		q.IsMultiSelect = *dto.IsMultiSelect
	}
	if dto.SortOrder != nil {
		q.SortOrder = *dto.SortOrder
	}
	if dto.IsActive != nil {
		q.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}

	s.cache.Delete(ctx, bankCacheKey)
	return q, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	s.cache.Delete(ctx, bankCacheKey)
	log.WithField("question_id", id.String()).Info("Question deleted")
	return nil
}

func (s *service) AddOption(ctx context.Context, dto AddOptionDTO) (*Option, error) {
	log := config.WithContext(ctx)

	if err := dto.Points.Validate(); err != nil {
		return nil, err
	}

	q, err := s.repo.FindByID(dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	o := Option{
		ID:         uuid.New(),
		QuestionID: q.ID,
		Label:      dto.Label,
		Emoji:      dto.Emoji,
		Points:     dto.Points,
		SortOrder:  dto.SortOrder,
	}
	if err := s.repo.CreateOption(&o); err != nil {
		log.WithError(err).Error("Failed to create option")
		return nil, err
	}

	s.cache.Delete(ctx, bankCacheKey)
	return &o, nil
}

func (s *service) UpdateOption(ctx context.Context, id uuid.UUID, dto UpdateOptionDTO) (*Option, error) {
	log := config.WithContext(ctx)

	o, err := s.repo.FindOption(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOptionNotFound
	}

	if dto.Label != nil {
		o.Label = *dto.Label
	}
	if dto.Emoji != nil {
		o.Emoji = *dto.Emoji
	}
	if dto.Points != nil {
		if err := dto.Points.Validate(); err != nil {
			return nil, err
		}
		o.Points = *dto.Points
	}
	if dto.SortOrder != nil {
		o.SortOrder = *dto.SortOrder
	}

	if err := s.repo.UpdateOption(o); err != nil {
		log.WithError(err).Error("Failed to update option")
		return nil, err
	}

	s.cache.Delete(ctx, bankCacheKey)
	return o, nil
}

func (s *service) DeleteOption(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	o, err := s.repo.FindOption(id)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOptionNotFound
	}

	if err := s.repo.DeleteOption(id); err != nil {
		log.WithError(err).Error("Failed to delete option")
		return err
	}

	s.cache.Delete(ctx, bankCacheKey)
	return nil
}

func (s *service) PointsFor(ctx context.Context, optionIDs []uuid.UUID) (map[uuid.UUID]PointMap, error) {
	return s.repo.PointsByOptionIDs(optionIDs)
}

package testimonial

import (
	"context"
	"errors"
	"fmt"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

type Service interface {
	List(ctx context.Context) ([]View, error)
	ListPublished(ctx context.Context) ([]View, error)
	ListFeatured(ctx context.Context) ([]View, error)
	Create(ctx context.Context, dto CreateTestimonialDTO) (*Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateTestimonialDTO) (*Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]View, error) {
	return s.repo.List()
}

func (s *service) ListPublished(ctx context.Context) ([]View, error) {
	return s.repo.ListPublished()
}

func (s *service) ListFeatured(ctx context.Context) ([]View, error) {
	return s.repo.ListFeatured()
}

func (s *service) Create(ctx context.Context, dto CreateTestimonialDTO) (*Testimonial, error) {
	log := config.WithContext(ctx)

	rating := dto.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	t := &Testimonial{
		ID:           uuid.New(),
		PatientName:  dto.PatientName,
		PatientPhoto: dto.PatientPhoto,
		Content:      dto.Content,
		Rating:       rating,
		ProcedureID:  dto.ProcedureID,
		Featured:     dto.Featured,
		IsPublished:  true,
	}
	if err := s.repo.Create(t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	log.WithField("testimonial_id", t.ID).Info("Testimonial created")
	return t, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateTestimonialDTO) (*Testimonial, error) {
	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTestimonialNotFound
	}

	if dto.PatientName != nil {
		t.PatientName = *dto.PatientName
	}
	if dto.PatientPhoto != nil {
		t.PatientPhoto = *dto.PatientPhoto
	}
	if dto.Content != nil {
		t.Content = *dto.Content
	}
	if dto.Rating != nil {
		if *dto.Rating < 1 || *dto.Rating > 5 {
			return nil, ErrInvalidRating
		}
		t.Rating = *dto.Rating
	}
	if dto.ProcedureID != nil {
		t.ProcedureID = dto.ProcedureID
	}
	if dto.Featured != nil {
		t.Featured = *dto.Featured
	}
	if dto.IsPublished != nil {
		t.IsPublished = *dto.IsPublished
	}

	if err := s.repo.Update(t); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTestimonialNotFound
	}
	return s.repo.Delete(id)
}

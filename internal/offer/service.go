package offer

import (
	"context"
	"errors"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrDuplicateSlug = errors.New("offer slug already exists")
)

type Service interface {
	ListActive(ctx context.Context) ([]Offer, error)
	GetBySlug(ctx context.Context, slug string) (*Offer, error)
	ListAll(ctx context.Context) ([]Offer, error)
	Create(ctx context.Context, dto CreateOfferDTO) (*Offer, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateOfferDTO) (*Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context) ([]Offer, error) {
	return s.repo.ListActive(time.Now())
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Offer, error) {
	o, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferNotFound
	}
	return o, nil
}

func (s *service) ListAll(ctx context.Context) ([]Offer, error) {
	return s.repo.ListAll()
}

func (s *service) Create(ctx context.Context, dto CreateOfferDTO) (*Offer, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindBySlug(dto.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSlug
	}

	o := Offer{
		ID:            uuid.New(),
		Title:         dto.Title,
		Slug:          dto.Slug,
		Description:   dto.Description,
		Badge:         dto.Badge,
		Price:         dto.Price,
		OriginalPrice: dto.OriginalPrice,
		CTALabel:      dto.CTALabel,
		CTAURL:        dto.CTAURL,
		ExpiresAt:     dto.ExpiresAt,
		SortOrder:     dto.SortOrder,
		IsActive:      true,
	}
	if err := s.repo.Create(&o); err != nil {
		log.WithError(err).Error("Failed to create offer")
		return nil, err
	}

	log.WithField("slug", o.Slug).Info("Offer created")
	return &o, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateOfferDTO) (*Offer, error) {
	log := config.WithContext(ctx)

	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferNotFound
	}

	if dto.Title != nil {
		o.Title = *dto.Title
	}
	if dto.Slug != nil {
		o.Slug = *dto.Slug
	}
	if dto.Description != nil {
		o.Description = *dto.Description
	}
	if dto.Badge != nil {
		o.Badge = *dto.Badge
	}
	if dto.Price != nil {
		o.Price = *dto.Price
	}
	if dto.OriginalPrice != nil {
		o.OriginalPrice = *dto.OriginalPrice
	}
	if dto.CTALabel != nil {
		o.CTALabel = *dto.CTALabel
	}
	if dto.CTAURL != nil {
		o.CTAURL = *dto.CTAURL
	}
	if dto.ExpiresAt != nil {
		o.ExpiresAt = dto.ExpiresAt
	}
	if dto.IsActive != nil {
		o.IsActive = *dto.IsActive
	}
	if dto.SortOrder != nil {
		o.SortOrder = *dto.SortOrder
	}

	if err := s.repo.Update(o); err != nil {
		log.WithError(err).Error("Failed to update offer")
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	o, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOfferNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete offer")
		return err
	}

	log.WithField("slug", o.Slug).Info("Offer deleted")
	return nil
}

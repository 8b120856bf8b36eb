package procedure

import (
	"context"
	"errors"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrProcedureNotFound = errors.New("procedure not found")
	ErrInvalidCategory   = errors.New("invalid procedure category")
	ErrDuplicateKey      = errors.New("procedure key already exists")
)

type Service interface {
	ListActive(ctx context.Context) ([]Procedure, error)
	ListFeatured(ctx context.Context) ([]Procedure, error)
	GetByKey(ctx context.Context, key string) (*Procedure, error)
	Create(ctx context.Context, dto CreateProcedureDTO) (*Procedure, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateProcedureDTO) (*Procedure, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context) ([]Procedure, error) {
	return s.repo.ListActive()
}

func (s *service) ListFeatured(ctx context.Context) ([]Procedure, error) {
	return s.repo.ListFeatured()
}

func (s *service) GetByKey(ctx context.Context, key string) (*Procedure, error) {
	p, err := s.repo.FindByKey(key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProcedureNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, dto CreateProcedureDTO) (*Procedure, error) {
	log := config.WithContext(ctx)

	if !dto.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	existing, err := s.repo.FindByKey(dto.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateKey
	}

	p := Procedure{
		ID:              uuid.New(),
		Key:             dto.Key,
		Name:            dto.Name,
		Description:     dto.Description,
		FullDescription: dto.FullDescription,
		Image:           dto.Image,
		PriceRange:      dto.PriceRange,
		Featured:        dto.Featured,
		Timeframe:       dto.Timeframe,
		Icon:            dto.Icon,
		ColorGradient:   dto.ColorGradient,
		Category:        dto.Category,
		SortOrder:       dto.SortOrder,
		IsActive:        true,
	}
	if err := s.repo.Create(&p); err != nil {
		log.WithError(err).Error("Failed to create procedure")
		return nil, err
	}

	log.WithField("key", p.Key).Info("Procedure created")
	return &p, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateProcedureDTO) (*Procedure, error) {
	log := config.WithContext(ctx)

	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProcedureNotFound
	}

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.FullDescription != nil {
		p.FullDescription = *dto.FullDescription
	}
	if dto.Image != nil {
		p.Image = *dto.Image
	}
	if dto.PriceRange != nil {
		p.PriceRange = *dto.PriceRange
	}
	if dto.Featured != nil {
		p.Featured = *dto.Featured
	}
	if dto.Timeframe != nil {
		p.Timeframe = *dto.Timeframe
	}
	if dto.Icon != nil {
		p.Icon = *dto.Icon
	}
	if dto.ColorGradient != nil {
		p.ColorGradient = *dto.ColorGradient
	}
	if dto.Category != nil {
		if !dto.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		p.Category = *dto.Category
	}
	if dto.SortOrder != nil {
		p.SortOrder = *dto.SortOrder
	}
	if dto.IsActive != nil {
		p.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to update procedure")
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	p, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProcedureNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete procedure")
		return err
	}

	log.WithField("key", p.Key).Info("Procedure deleted")
	return nil
}

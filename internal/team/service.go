package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrMemberNotFound  = errors.New("team member not found")
	ErrInvalidCategory = errors.New("invalid team category")
	ErrDuplicateSlug   = errors.New("team member slug already in use")
)

type Service interface {
	ListPublished(ctx context.Context) ([]Member, error)
	ListAll(ctx context.Context) ([]Member, error)
	Grouped(ctx context.Context) (*GroupedMembers, error)
	GetBySlug(ctx context.Context, s string) (*Member, error)
	Create(ctx context.Context, dto CreateMemberDTO) (*Member, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateMemberDTO) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListPublished(ctx context.Context) ([]Member, error) {
	return s.repo.ListPublished()
}

func (s *service) ListAll(ctx context.Context) ([]Member, error) {
	return s.repo.ListAll()
}

// Grouped buckets published members by category, keeping each bucket in
// sort order. Empty buckets come back as empty slices so the page can
// render every section.
func (s *service) Grouped(ctx context.Context) (*GroupedMembers, error) {
	members, err := s.repo.ListPublished()
	if err != nil {
		return nil, err
	}

	grouped := &GroupedMembers{
		Dentists:   []Member{},
		Executives: []Member{},
		Hygienists: []Member{},
		Staff:      []Member{},
	}
	for _, m := range members {
		switch m.Category {
		case CategoryDentist:
			grouped.Dentists = append(grouped.Dentists, m)
		case CategoryExecutive:
			grouped.Executives = append(grouped.Executives, m)
		case CategoryHygienist:
			grouped.Hygienists = append(grouped.Hygienists, m)
		default:
			grouped.Staff = append(grouped.Staff, m)
		}
	}
	return grouped, nil
}

func (s *service) GetBySlug(ctx context.Context, sl string) (*Member, error) {
	m, err := s.repo.FindBySlug(sl)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

func (s *service) Create(ctx context.Context, dto CreateMemberDTO) (*Member, error) {
	log := config.WithContext(ctx)

	category := dto.Category
	if category == "" {
		category = CategoryStaff
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	memberSlug := dto.Slug
	if memberSlug == "" {
		memberSlug = slug.Make(dto.Name)
	}
	taken, err := s.repo.SlugTaken(memberSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrDuplicateSlug
	}

	m := &Member{
		ID:             uuid.New(),
		Name:           dto.Name,
		Title:          dto.Title,
		Bio:            dto.Bio,
		FullBio:        dto.FullBio,
		Photo:          dto.Photo,
		Email:          dto.Email,
		Specialties:    dto.Specialties,
		Credentials:    dto.Credentials,
		Category:       category,
		BioPageEnabled: dto.BioPageEnabled,
		Slug:           memberSlug,
		SortOrder:      dto.SortOrder,
		IsPublished:    true,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	log.WithField("member_id", m.ID).Info("Team member created")
	return m, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateMemberDTO) (*Member, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}

	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.Title != nil {
		m.Title = *dto.Title
	}
	if dto.Bio != nil {
		m.Bio = *dto.Bio
	}
	if dto.FullBio != nil {
		m.FullBio = *dto.FullBio
	}
	if dto.Photo != nil {
		m.Photo = *dto.Photo
	}
	if dto.Email != nil {
		m.Email = *dto.Email
	}
	if dto.Specialties != nil {
		m.Specialties = *dto.Specialties
	}
	if dto.Credentials != nil {
		m.Credentials = *dto.Credentials
	}
	if dto.Category != nil {
		if !dto.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		m.Category = *dto.Category
	}
	if dto.BioPageEnabled != nil {
		m.BioPageEnabled = *dto.BioPageEnabled
	}
	if dto.Slug != nil && *dto.Slug != m.Slug {
		taken, err := s.repo.SlugTaken(*dto.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrDuplicateSlug
		}
		m.Slug = *dto.Slug
	}
	if dto.SortOrder != nil {
		m.SortOrder = *dto.SortOrder
	}
	if dto.IsPublished != nil {
		m.IsPublished = *dto.IsPublished
	}

	if err := s.repo.Update(m); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMemberNotFound
	}
	return s.repo.Delete(id)
}

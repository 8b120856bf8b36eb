package post

import (
	"context"
	"errors"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateSlug = errors.New("post slug already exists")
)

type Service interface {
	ListRecent(ctx context.Context, limit int) ([]Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	Create(ctx context.Context, dto CreatePostDTO) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdatePostDTO) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	return s.repo.ListRecent(limit)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	p, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (s *service) ListAll(ctx context.Context) ([]Post, error) {
	return s.repo.ListAll()
}

func (s *service) Create(ctx context.Context, dto CreatePostDTO) (*Post, error) {
	log := config.WithContext(ctx)

	taken, err := s.repo.SlugTaken(dto.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSlug
	}

	p := Post{
		ID:         uuid.New(),
		Title:      dto.Title,
		Slug:       dto.Slug,
		Excerpt:    dto.Excerpt,
		Content:    dto.Content,
		CoverImage: dto.CoverImage,
	}
	if dto.Publish {
		now := time.Now()
		p.IsPublished = true
		p.PublishedAt = &now
	}

	if err := s.repo.Create(&p); err != nil {
		log.WithError(err).Error("Failed to create post")
		return nil, err
	}

	log.WithField("slug", p.Slug).Info("Post created")
	return &p, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdatePostDTO) (*Post, error) {
	log := config.WithContext(ctx)

	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}

	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Slug != nil {
		p.Slug = *dto.Slug
	}
	if dto.Excerpt != nil {
		p.Excerpt = *dto.Excerpt
	}
	if dto.Content != nil {
		p.Content = *dto.Content
	}
	if dto.CoverImage != nil {
		p.CoverImage = *dto.CoverImage
	}
	if dto.Publish != nil {
		p.IsPublished = *dto.Publish
		if *dto.Publish && p.PublishedAt == nil {
			now := time.Now()
			p.PublishedAt = &now
		}
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to update post")
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
		return ErrPostNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete post")
		return err
	}

	log.WithField("slug", p.Slug).Info("Post deleted")
	return nil
}

package contact

import (
	"context"
	"errors"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/dentalogix/dentalogix-api/internal/notification"
	"github.com/google/uuid"
)

var ErrMessageNotFound = errors.New("contact message not found")

type CreateMessageDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

type Service interface {
	Create(ctx context.Context, dto CreateMessageDTO) (*Message, error)
	List(ctx context.Context, limit, offset int) ([]Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	notifier notification.Notifier
}

func NewService(repo Repository, notifier notification.Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) Create(ctx context.Context, dto CreateMessageDTO) (*Message, error) {
	log := config.WithContext(ctx)

	m := Message{
		ID:      uuid.New(),
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Subject: dto.Subject,
		Body:    dto.Body,
	}
	if err := s.repo.Create(&m); err != nil {
		log.WithError(err).Error("Failed to create contact message")
		return nil, err
	}

	log.WithField("message_id", m.ID.String()).Info("Contact message received")

	go s.notify(m)

	return &m, nil
}

func (s *service) notify(m Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.notifier.NotifyContactMessage(ctx, notification.ContactMessage{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Subject: m.Subject,
		Body:    m.Body,
	})
	if err != nil && !errors.Is(err, notification.ErrNotConfigured) {
		config.WithContext(ctx).WithError(err).Warn("Contact notification failed")
	}
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(limit, offset)
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMessageNotFound
	}
	return s.repo.MarkRead(id)
}

func (s *service) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread()
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMessageNotFound
	}
	return s.repo.Delete(id)
}

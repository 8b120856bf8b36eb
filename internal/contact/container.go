package contact

import (
	"github.com/dentalogix/dentalogix-api/internal/notification"
	"gorm.io/gorm"
)

type ContactContainer struct {
	Service Service
	Handler *Handler
}

func NewContactContainer(db *gorm.DB, notifier notification.Notifier) *ContactContainer {
	repo := NewRepository(db)
	service := NewService(repo, notifier)
	handler := NewHandler(service)

	return &ContactContainer{
		Service: service,
		Handler: handler,
	}
}

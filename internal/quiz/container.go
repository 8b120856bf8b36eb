package quiz

import (
	"github.com/dentalogix/dentalogix-api/internal/cache"
	"github.com/dentalogix/dentalogix-api/internal/notification"
	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/question"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, questions question.Service, procedures procedure.Service, notifier notification.Notifier, c *cache.Cache) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, questions, procedures, notifier, c)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

package question

import (
	"github.com/dentalogix/dentalogix-api/internal/cache"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewQuestionContainer(db *gorm.DB, c *cache.Cache) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, c)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

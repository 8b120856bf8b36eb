package team

import "gorm.io/gorm"

type TeamContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewTeamContainer(db *gorm.DB) *TeamContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TeamContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

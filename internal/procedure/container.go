package procedure

import "gorm.io/gorm"

type ProcedureContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewProcedureContainer(db *gorm.DB) *ProcedureContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ProcedureContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

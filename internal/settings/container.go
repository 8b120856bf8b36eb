package settings

import "gorm.io/gorm"

type SettingsContainer struct {
	Service Service
	Handler *Handler
}

func NewSettingsContainer(db *gorm.DB) *SettingsContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &SettingsContainer{
		Service: service,
		Handler: handler,
	}
}

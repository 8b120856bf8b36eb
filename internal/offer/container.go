package offer

import "gorm.io/gorm"

type OfferContainer struct {
	Service Service
	Handler *Handler
}

func NewOfferContainer(db *gorm.DB) *OfferContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &OfferContainer{
		Service: service,
		Handler: handler,
	}
}

package post

import "gorm.io/gorm"

type PostContainer struct {
	Service Service
	Handler *Handler
}

func NewPostContainer(db *gorm.DB) *PostContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &PostContainer{
		Service: service,
		Handler: handler,
	}
}

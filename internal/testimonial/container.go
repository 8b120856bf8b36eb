package testimonial

import "gorm.io/gorm"

type TestimonialContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewTestimonialContainer(db *gorm.DB) *TestimonialContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TestimonialContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

package post

import (
	"net/http"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/recent", h.ListRecent)
	r.Get("/slug/{slug}", h.GetBySlug)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/", h.ListAll)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

package procedure

import (
	"net/http"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/featured", h.ListFeatured)
	r.Get("/{key}", h.GetByKey)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

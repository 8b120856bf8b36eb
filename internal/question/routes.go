package question

import (
	"net/http"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)

		r.Post("/{id}/options", h.AddOption)
		r.Put("/options/{optionID}", h.UpdateOption)
		r.Delete("/options/{optionID}", h.DeleteOption)
	})

	return r
}

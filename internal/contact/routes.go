package contact

import (
	"net/http"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/", h.List)
		r.Get("/unread-count", h.UnreadCount)
		r.Post("/{id}/read", h.MarkRead)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

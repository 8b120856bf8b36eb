package quiz

import (
	"net/http"

	"github.com/dentalogix/dentalogix-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/submissions", h.Submit)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/submissions", h.ListSubmissions)
		r.Get("/submissions/{id}", h.GetSubmission)
		r.Get("/stats", h.Stats)
	})

	return r
}

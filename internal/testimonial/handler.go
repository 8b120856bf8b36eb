package testimonial

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	views, err := h.service.ListPublished(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list testimonials")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, views)
}

func (h *Handler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	views, err := h.service.ListFeatured(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list featured testimonials")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, views)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	views, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list testimonials")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, views)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTestimonialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.PatientName == "" || dto.Content == "" {
		http.Error(w, "patient_name and content are required", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create testimonial")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateTestimonialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrTestimonialNotFound):
			http.Error(w, "testimonial not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidRating):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update testimonial")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			http.Error(w, "testimonial not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete testimonial")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "testimonial deleted successfully",
	})
}

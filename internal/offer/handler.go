package offer

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

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	offers, err := h.service.ListActive(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active offers")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, offers)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug required", http.StatusBadRequest)
		return
	}

	o, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get offer")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	offers, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list offers")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, offers)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateOfferDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Title == "" || dto.Slug == "" {
		http.Error(w, "title and slug are required", http.StatusBadRequest)
		return
	}

	o, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create offer")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, o)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateOfferDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update offer")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete offer")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "offer deleted successfully",
	})
}

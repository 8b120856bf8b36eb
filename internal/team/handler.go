package team

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

	members, err := h.service.ListPublished(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list team members")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, members)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	members, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list team members")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, members)
}

func (h *Handler) Grouped(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	grouped, err := h.service.Grouped(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to group team members")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, grouped)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	s := chi.URLParam(r, "slug")
	if s == "" {
		http.Error(w, "slug required", http.StatusBadRequest)
		return
	}

	m, err := h.service.GetBySlug(r.Context(), s)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			http.Error(w, "team member not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get team member")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	m, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateSlug):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.WithError(err).Error("Failed to create team member")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			http.Error(w, "team member not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateSlug):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.WithError(err).Error("Failed to update team member")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			http.Error(w, "team member not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete team member")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "team member deleted successfully",
	})
}

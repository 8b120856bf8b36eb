package procedure

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

	procedures, err := h.service.ListActive(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list procedures")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, procedures)
}

func (h *Handler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	procedures, err := h.service.ListFeatured(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list featured procedures")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, procedures)
}

func (h *Handler) GetByKey(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	key := chi.URLParam(r, "key")
	if key == "" {
		http.Error(w, "procedure key required", http.StatusBadRequest)
		return
	}

	p, err := h.service.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, ErrProcedureNotFound) {
			http.Error(w, "procedure not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get procedure")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateProcedureDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Key == "" || dto.Name == "" {
		http.Error(w, "key and name are required", http.StatusBadRequest)
		return
	}

	p, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrDuplicateKey):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to create procedure")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateProcedureDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrProcedureNotFound):
			http.Error(w, "procedure not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update procedure")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrProcedureNotFound) {
			http.Error(w, "procedure not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete procedure")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "procedure deleted successfully",
	})
}

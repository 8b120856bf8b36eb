package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list recent posts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, posts)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug required", http.StatusBadRequest)
		return
	}

	p, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	posts, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list posts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, posts)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Title == "" || dto.Slug == "" {
		http.Error(w, "title and slug are required", http.StatusBadRequest)
		return
	}

	p, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.WithError(err).Error("Failed to create post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
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

	var dto UpdatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
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
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "post deleted successfully",
	})
}

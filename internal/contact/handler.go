package contact

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" || dto.Body == "" {
		http.Error(w, "name and message are required", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Create(r.Context(), dto); err != nil {
		log.WithError(err).Error("Failed to create contact message")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{
		"message": "message sent successfully",
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	messages, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list contact messages")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, messages)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			http.Error(w, "message not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to mark message read")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "marked as read",
	})
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	count, err := h.service.CountUnread(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to count unread messages")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			http.Error(w, "message not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete contact message")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "message deleted successfully",
	})
}

package quiz

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

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid quiz submission body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	meta := RequestMeta{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}

	resp, err := h.service.Submit(r.Context(), dto, meta)
	if err != nil {
		if errors.Is(err, ErrEmptySubmission) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to record quiz submission")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.service.ListSubmissions(r.Context(), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, list)
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	detail, err := h.service.GetSubmission(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			http.Error(w, "submission not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get submission")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, detail)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute quiz stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

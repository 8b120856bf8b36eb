package question

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

	questions, err := h.service.ListWithOptions(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Prompt == "" || dto.Category == "" {
		http.Error(w, "prompt and category are required", http.StatusBadRequest)
		return
	}

	q, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrNegativeWeight) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question deleted successfully",
	})
}

func (h *Handler) AddOption(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	var dto AddOptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dto.QuestionID = questionID
	if dto.Label == "" {
		http.Error(w, "label is required", http.StatusBadRequest)
		return
	}

	o, err := h.service.AddOption(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			http.Error(w, "question not found", http.StatusNotFound)
		case errors.Is(err, ErrNegativeWeight):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to add option")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, o)
}

func (h *Handler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "optionID"))
	if err != nil {
		http.Error(w, "invalid option id", http.StatusBadRequest)
		return
	}

	var dto UpdateOptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.service.UpdateOption(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrOptionNotFound):
			http.Error(w, "option not found", http.StatusNotFound)
		case errors.Is(err, ErrNegativeWeight):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update option")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "optionID"))
	if err != nil {
		http.Error(w, "invalid option id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteOption(r.Context(), id); err != nil {
		if errors.Is(err, ErrOptionNotFound) {
			http.Error(w, "option not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete option")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "option deleted successfully",
	})
}

package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-reading/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizzes, err := h.service.ListQuizzes(r.Context(), r.URL.Query().Get("book"))
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		config.Error(w, http.StatusBadRequest, "quiz id required")
		return
	}

	q, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	summary, err := h.service.History(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		config.Error(w, http.StatusBadRequest, "quiz id required")
		return
	}

	attempt, err := h.service.StartAttempt(r.Context(), quizID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, attempt)
}

func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, ok := attemptID(w, r)
	if !ok {
		return
	}

	attempt, err := h.service.GetAttempt(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := attemptID(w, r)
	if !ok {
		return
	}

	var payload struct {
		Option *int `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Option == nil {
		log.WithError(err).Warn("Invalid answer payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	attempt, err := h.service.Answer(r.Context(), id, *payload.Option)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	id, ok := attemptID(w, r)
	if !ok {
		return
	}

	attempt, err := h.service.Advance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) Retake(w http.ResponseWriter, r *http.Request) {
	id, ok := attemptID(w, r)
	if !ok {
		return
	}

	attempt, err := h.service.Retake(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	id, ok := attemptID(w, r)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func attemptID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid attempt id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrQuizNotFound):
		config.Error(w, http.StatusNotFound, "quiz not found")
	case errors.Is(err, ErrAttemptNotFound):
		config.Error(w, http.StatusNotFound, "attempt not found")
	case errors.Is(err, ErrInvalidQuiz):
		config.Error(w, http.StatusUnprocessableEntity, "this quiz has no questions yet")
	case errors.Is(err, ErrMalformedQuiz):
		config.Error(w, http.StatusUnprocessableEntity, "this quiz is unavailable")
	case errors.Is(err, ErrInvalidOption):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotAnswered), errors.Is(err, ErrNotInProgress):
		config.Error(w, http.StatusConflict, err.Error())
	default:
		log.WithError(err).Error("Unexpected quiz error")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-reading/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ReadingInsights(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ReadingInsights(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) VocabularyAnalysis(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.VocabularyAnalysis(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Recommendations(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Summary(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.State(r.Context(), RequestType(chi.URLParam(r, "type")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid generate payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequestType), errors.Is(err, ErrTitleRequired):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.WithContext(r.Context()).WithError(err).Error("Unexpected AI error")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

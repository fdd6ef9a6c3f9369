package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/insights/reading", h.ReadingInsights)
	r.Get("/insights/vocabulary", h.VocabularyAnalysis)
	r.Get("/recommendations", h.Recommendations)
	r.Get("/summary", h.Summary)
	r.Get("/state/{type}", h.State)
	r.Post("/generate", h.Generate)
	return r
}

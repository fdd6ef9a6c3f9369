package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuizzes)
	r.Get("/history", h.History)
	r.Get("/{id}", h.GetQuiz)
	r.Post("/{id}/attempts", h.StartAttempt)

	r.Route("/attempts/{attemptID}", func(r chi.Router) {
		r.Get("/", h.GetAttempt)
		r.Delete("/", h.Abandon)
		r.Post("/answer", h.Answer)
		r.Post("/advance", h.Advance)
		r.Post("/retake", h.Retake)
	})
	return r
}

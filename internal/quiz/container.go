package quiz

import (
	"context"
	"time"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"github.com/saulo-duarte/chronos-reading/internal/kvstore"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	History HistoryRepository
}

func NewQuizContainer(ctx context.Context, store kvstore.Store, location *time.Location) (*QuizContainer, error) {
	log := config.WithContext(ctx)

	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	for quizID, problem := range catalog.Validate() {
		log.WithError(problem).WithField("quiz_id", quizID).Warn("Quiz will refuse to start")
	}

	history := NewHistoryRepository(store)
	service := NewService(catalog, history, location)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		History: history,
	}, nil
}

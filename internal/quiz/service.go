package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-reading/internal/config"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrAttemptNotFound = errors.New("attempt not found")
)

// attemptTTL is how long an attempt survives without being touched.
const attemptTTL = 2 * time.Hour

type QuizService interface {
	ListQuizzes(ctx context.Context, bookID string) ([]QuizSummaryDTO, error)
	GetQuiz(ctx context.Context, quizID string) (*QuizDTO, error)
	History(ctx context.Context) (*HistorySummary, error)

	StartAttempt(ctx context.Context, quizID string) (*AttemptDTO, error)
	GetAttempt(ctx context.Context, attemptID uuid.UUID) (*AttemptDTO, error)
	Answer(ctx context.Context, attemptID uuid.UUID, option int) (*AttemptDTO, error)
	Advance(ctx context.Context, attemptID uuid.UUID) (*AttemptDTO, error)
	Retake(ctx context.Context, attemptID uuid.UUID) (*AttemptDTO, error)
	Abandon(ctx context.Context, attemptID uuid.UUID) error
}

type session struct {
	mu     sync.Mutex
	engine *Engine

	// touched is guarded by quizService.mu.
	touched time.Time
}

type quizService struct {
	catalog  *Catalog
	history  HistoryRepository
	location *time.Location
	now      func() time.Time

	mu       sync.Mutex
	attempts map[uuid.UUID]*session
}

func NewService(catalog *Catalog, history HistoryRepository, location *time.Location) QuizService {
	if location == nil {
		location = time.Local
	}
	return &quizService{
		catalog:  catalog,
		history:  history,
		location: location,
		now:      time.Now,
		attempts: make(map[uuid.UUID]*session),
	}
}

// ListQuizzes lists the catalog, or only the quiz for bookID when it is set.
func (s *quizService) ListQuizzes(ctx context.Context, bookID string) ([]QuizSummaryDTO, error) {
	log := config.WithContext(ctx)

	history, err := s.history.All(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		return nil, err
	}

	quizzes := s.catalog.All()
	if bookID != "" {
		quizzes = nil
		if q, ok := s.catalog.ByBook(bookID); ok {
			quizzes = []*Quiz{q}
		}
	}
	out := make([]QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		dto := QuizSummaryDTO{
			ID:            q.ID,
			Title:         q.Title,
			BookID:        q.BookID,
			QuestionCount: len(q.Questions),
		}
		if entry, ok := history[q.HistoryKey()]; ok {
			dto.LastResult = &entry
		}
		out = append(out, dto)
	}
	return out, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*QuizDTO, error) {
	q, ok := s.catalog.ByID(quizID)
	if !ok {
		config.WithContext(ctx).WithField("quiz_id", quizID).Warn("Quiz not found")
		return nil, ErrQuizNotFound
	}
	return toQuizDTO(q), nil
}

func (s *quizService) History(ctx context.Context) (*HistorySummary, error) {
	summary, err := s.history.Summary(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz history")
		return nil, err
	}
	return summary, nil
}

func (s *quizService) StartAttempt(ctx context.Context, quizID string) (*AttemptDTO, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	q, ok := s.catalog.ByID(quizID)
	if !ok {
		log.Warn("Attempt requested for unknown quiz")
		return nil, ErrQuizNotFound
	}

	engine := NewEngine(s.history, WithClock(s.now), WithLocation(s.location))
	if err := engine.Start(q); err != nil {
		log.WithError(err).Error("Quiz could not be started")
		return nil, err
	}

	id := uuid.New()
	now := s.now()
	s.mu.Lock()
	evicted := s.evictStale(now)
	s.attempts[id] = &session{engine: engine, touched: now}
	s.mu.Unlock()

	if evicted > 0 {
		log.WithField("evicted", evicted).Debug("Dropped stale quiz attempts")
	}

	log.WithField("attempt_id", id).Info("Quiz attempt started")
	return &AttemptDTO{ID: id, View: engine.View()}, nil
}

func (s *quizService) GetAttempt(ctx context.Context, attemptID uuid.UUID) (*AttemptDTO, error) {
	return s.withSession(ctx, attemptID, func(e *Engine) error { return nil })
}

func (s *quizService) Answer(ctx context.Context, attemptID uuid.UUID, option int) (*AttemptDTO, error) {
	return s.withSession(ctx, attemptID, func(e *Engine) error {
		err := e.Answer(option)
		if errors.Is(err, ErrAlreadyAnswered) {
			config.WithContext(ctx).WithField("attempt_id", attemptID).Debug("Ignoring repeated answer")
			return nil
		}
		return err
	})
}

func (s *quizService) Advance(ctx context.Context, attemptID uuid.UUID) (*AttemptDTO, error) {
	log := config.WithContext(ctx).WithField("attempt_id", attemptID)

	return s.withSession(ctx, attemptID, func(e *Engine) error {
		if err := e.Advance(ctx); err != nil {
			if e.State() == StateCompleted {
				log.WithError(err).Error("Quiz completed but history could not be saved")
				return nil
			}
			return err
		}
		if result := e.Result(); result != nil {
			log.WithField("score_percent", result.ScorePercent).Info("Quiz attempt completed")
		}
		return nil
	})
}

func (s *quizService) Retake(ctx context.Context, attemptID uuid.UUID) (*AttemptDTO, error) {
	return s.withSession(ctx, attemptID, func(e *Engine) error {
		q, ok := s.catalog.ByID(e.Attempt().QuizID)
		if !ok {
			return ErrQuizNotFound
		}
		return e.Retake(q)
	})
}

func (s *quizService) Abandon(ctx context.Context, attemptID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attempts[attemptID]; !ok {
		return ErrAttemptNotFound
	}
	delete(s.attempts, attemptID)
	config.WithContext(ctx).WithField("attempt_id", attemptID).Info("Quiz attempt abandoned")
	return nil
}

func (s *quizService) withSession(ctx context.Context, attemptID uuid.UUID, fn func(e *Engine) error) (*AttemptDTO, error) {
	s.mu.Lock()
	sess, ok := s.attempts[attemptID]
	if ok {
		sess.touched = s.now()
	}
	s.mu.Unlock()
	if !ok {
		config.WithContext(ctx).WithField("attempt_id", attemptID).Warn("Attempt not found")
		return nil, ErrAttemptNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess.engine); err != nil {
		return nil, err
	}
	return &AttemptDTO{ID: attemptID, View: sess.engine.View()}, nil
}

// evictStale drops attempts idle for longer than attemptTTL. Callers hold s.mu.
func (s *quizService) evictStale(now time.Time) int {
	evicted := 0
	for id, sess := range s.attempts {
		if now.Sub(sess.touched) > attemptTTL {
			delete(s.attempts, id)
			evicted++
		}
	}
	return evicted
}

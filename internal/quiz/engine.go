package quiz

import (
	"context"
	"errors"
	"maps"
	"time"

	util "github.com/saulo-duarte/chronos-reading/internal/utils"
)

var (
	ErrInvalidQuiz     = errors.New("quiz has no questions")
	ErrMalformedQuiz   = errors.New("quiz is malformed")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("current question has not been answered")
	ErrNotInProgress   = errors.New("quiz is not in progress")
	ErrInvalidOption   = errors.New("option index out of range")
)

type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
)

// Attempt is the transient progress through one quiz. Questions are answered
// in order, so the keys of Answers in ascending order are the answer order.
type Attempt struct {
	QuizID               string
	CurrentQuestionIndex int
	Answers              map[int]int
	Score                int
}

// Engine drives a single attempt. It is not safe for concurrent use.
type Engine struct {
	history  HistoryRepository
	now      func() time.Time
	location *time.Location

	state   State
	quiz    *Quiz
	attempt Attempt
	result  *HistoryEntry
}

type EngineOption func(*Engine)

func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) { e.location = loc }
}

func NewEngine(history HistoryRepository, opts ...EngineOption) *Engine {
	e := &Engine{
		history:  history,
		now:      time.Now,
		location: time.Local,
		state:    StateNotStarted,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start resets the engine to the first question of quiz. On a validation
// error the engine keeps its previous state.
func (e *Engine) Start(quiz *Quiz) error {
	if err := quiz.Validate(); err != nil {
		return err
	}
	e.quiz = quiz
	e.attempt = Attempt{
		QuizID:  quiz.ID,
		Answers: make(map[int]int, len(quiz.Questions)),
	}
	e.result = nil
	e.state = StateInProgress
	return nil
}

func (e *Engine) Retake(quiz *Quiz) error {
	return e.Start(quiz)
}

func (e *Engine) Answer(option int) error {
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	idx := e.attempt.CurrentQuestionIndex
	if _, answered := e.attempt.Answers[idx]; answered {
		return ErrAlreadyAnswered
	}
	question := e.quiz.Questions[idx]
	if option < 0 || option >= len(question.Options) {
		return ErrInvalidOption
	}

	e.attempt.Answers[idx] = option
	if option == question.CorrectOption {
		e.attempt.Score++
	}
	return nil
}

// Advance moves to the next question, or completes the quiz after the last
// one. A history write failure is returned after the attempt has completed.
func (e *Engine) Advance(ctx context.Context) error {
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	if _, answered := e.attempt.Answers[e.attempt.CurrentQuestionIndex]; !answered {
		return ErrNotAnswered
	}
	if e.attempt.CurrentQuestionIndex < len(e.quiz.Questions)-1 {
		e.attempt.CurrentQuestionIndex++
		return nil
	}
	return e.complete(ctx)
}

func (e *Engine) complete(ctx context.Context) error {
	entry := HistoryEntry{
		QuizID:       e.quiz.ID,
		BookID:       e.quiz.HistoryKey(),
		Date:         util.Today(e.now(), e.location),
		ScorePercent: ScorePercent(e.attempt.Score, len(e.quiz.Questions)),
	}
	e.result = &entry
	e.state = StateCompleted

	if e.history == nil {
		return nil
	}
	return e.history.Save(ctx, entry)
}

func (e *Engine) State() State {
	return e.state
}

// Attempt returns a copy of the attempt; its Answers map is not shared.
func (e *Engine) Attempt() Attempt {
	a := e.attempt
	a.Answers = maps.Clone(e.attempt.Answers)
	return a
}

// Result is the history entry produced on completion, nil before that.
func (e *Engine) Result() *HistoryEntry {
	return e.result
}

// ScorePercent rounds score/total*100 half up.
func ScorePercent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

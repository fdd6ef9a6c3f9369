package quiz

import (
	"fmt"

	util "github.com/saulo-duarte/chronos-reading/internal/utils"
)

type Quiz struct {
	ID        string         `yaml:"id" json:"id"`
	Title     string         `yaml:"title" json:"title"`
	BookID    string         `yaml:"book_id" json:"book_id"`
	Questions []QuizQuestion `yaml:"questions" json:"questions,omitempty"`
}

type QuizQuestion struct {
	Text          string   `yaml:"question" json:"question"`
	Options       []string `yaml:"options" json:"options"`
	CorrectOption int      `yaml:"correct_answer" json:"correct_answer"`
}

// Validate reports ErrInvalidQuiz for a quiz without questions and
// ErrMalformedQuiz when a question's answer index does not fit its options.
func (q *Quiz) Validate() error {
	if q == nil || len(q.Questions) == 0 {
		return ErrInvalidQuiz
	}
	for i, question := range q.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("%w: question %d has %d options", ErrMalformedQuiz, i+1, len(question.Options))
		}
		if question.CorrectOption < 0 || question.CorrectOption >= len(question.Options) {
			return fmt.Errorf("%w: question %d answer index %d out of %d options",
				ErrMalformedQuiz, i+1, question.CorrectOption, len(question.Options))
		}
	}
	return nil
}

// HistoryKey identifies the persisted history entry for the quiz.
func (q *Quiz) HistoryKey() string {
	if q.BookID != "" {
		return q.BookID
	}
	return q.ID
}

// HistoryEntry is the last completed attempt for a book.
type HistoryEntry struct {
	QuizID       string    `json:"quiz_id,omitempty"`
	BookID       string    `json:"book_id,omitempty"`
	Date         util.Date `json:"date"`
	ScorePercent int       `json:"score"`
}

type HistorySummary struct {
	Completed    int            `json:"completed"`
	AverageScore int            `json:"average_score"`
	Recent       []HistoryEntry `json:"recent"`
}

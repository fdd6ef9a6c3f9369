package quiz

import "github.com/google/uuid"

type ReviewItem struct {
	Question       string `json:"question"`
	SelectedOption *int   `json:"selected_option"`
	CorrectOption  int    `json:"correct_option"`
	Correct        bool   `json:"correct"`
}

// View is what a client renders for an attempt. The correct option of the
// current question is revealed only once it has been answered.
type View struct {
	QuizID         string       `json:"quiz_id"`
	Title          string       `json:"title"`
	BookID         string       `json:"book_id"`
	State          State        `json:"state"`
	QuestionIndex  int          `json:"question_index"`
	TotalQuestions int          `json:"total_questions"`
	Question       string       `json:"question,omitempty"`
	Options        []string     `json:"options,omitempty"`
	Answered       bool         `json:"answered"`
	SelectedOption *int         `json:"selected_option,omitempty"`
	CorrectOption  *int         `json:"correct_option,omitempty"`
	Score          int          `json:"score"`
	Completed      bool         `json:"completed"`
	FinalScore     *int         `json:"final_score,omitempty"`
	ScorePercent   *int         `json:"score_percent,omitempty"`
	Review         []ReviewItem `json:"review,omitempty"`
}

type AttemptDTO struct {
	ID uuid.UUID `json:"id"`
	View
}

type QuizSummaryDTO struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	BookID        string        `json:"book_id"`
	QuestionCount int           `json:"question_count"`
	LastResult    *HistoryEntry `json:"last_result,omitempty"`
}

func (e *Engine) View() View {
	v := View{State: e.state}
	if e.quiz == nil {
		return v
	}

	v.QuizID = e.quiz.ID
	v.Title = e.quiz.Title
	v.BookID = e.quiz.BookID
	v.TotalQuestions = len(e.quiz.Questions)
	v.QuestionIndex = e.attempt.CurrentQuestionIndex
	v.Score = e.attempt.Score

	switch e.state {
	case StateInProgress:
		q := e.quiz.Questions[v.QuestionIndex]
		v.Question = q.Text
		v.Options = append([]string(nil), q.Options...)
		if chosen, ok := e.attempt.Answers[v.QuestionIndex]; ok {
			correct := q.CorrectOption
			v.Answered = true
			v.SelectedOption = &chosen
			v.CorrectOption = &correct
		}
	case StateCompleted:
		final := e.attempt.Score
		v.Completed = true
		v.FinalScore = &final
		if e.result != nil {
			percent := e.result.ScorePercent
			v.ScorePercent = &percent
		}
		v.Review = e.review()
	}
	return v
}

func (e *Engine) review() []ReviewItem {
	items := make([]ReviewItem, 0, len(e.quiz.Questions))
	for i, q := range e.quiz.Questions {
		item := ReviewItem{Question: q.Text, CorrectOption: q.CorrectOption}
		if chosen, ok := e.attempt.Answers[i]; ok {
			item.SelectedOption = &chosen
			item.Correct = chosen == q.CorrectOption
		}
		items = append(items, item)
	}
	return items
}

type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizDTO is a quiz without its answer key.
type QuizDTO struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	BookID    string        `json:"book_id"`
	Questions []QuestionDTO `json:"questions"`
}

func toQuizDTO(q *Quiz) *QuizDTO {
	out := &QuizDTO{ID: q.ID, Title: q.Title, BookID: q.BookID}
	for _, question := range q.Questions {
		out.Questions = append(out.Questions, QuestionDTO{
			Question: question.Text,
			Options:  append([]string(nil), question.Options...),
		})
	}
	return out
}

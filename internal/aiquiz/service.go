package aiquiz

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"github.com/saulo-duarte/chronos-reading/internal/library"
)

var (
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrTitleRequired      = errors.New("book title is required")
)

type Service interface {
	ReadingInsights(ctx context.Context) (*InsightsResponse, error)
	VocabularyAnalysis(ctx context.Context) (*InsightsResponse, error)
	Recommendations(ctx context.Context) (*RecommendationsResponse, error)
	Summary(ctx context.Context, title string) (*SummaryResponse, error)
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	State(ctx context.Context, t RequestType) (*StateResponse, error)
}

type service struct {
	orchestrator *Orchestrator
	library      library.Service
}

func NewService(orchestrator *Orchestrator, lib library.Service) Service {
	return &service{orchestrator: orchestrator, library: lib}
}

func (s *service) ReadingInsights(ctx context.Context) (*InsightsResponse, error) {
	return s.insights(ctx, ReadingInsights, "Insight")
}

func (s *service) VocabularyAnalysis(ctx context.Context) (*InsightsResponse, error) {
	return s.insights(ctx, VocabularyAnalysis, "Vocabulary Insight")
}

func (s *service) insights(ctx context.Context, t RequestType, placeholder string) (*InsightsResponse, error) {
	res := s.orchestrator.Generate(ctx, t, s.promptContext(ctx, ""))

	return &InsightsResponse{
		Type:      t,
		Insights:  ParseInsights(res.Text, placeholder),
		Origin:    res.Origin,
		DemoMode:  res.Origin == OriginFallback,
		IsLoading: s.orchestrator.State(t) == StatePending,
	}, nil
}

func (s *service) Recommendations(ctx context.Context) (*RecommendationsResponse, error) {
	res := s.orchestrator.Generate(ctx, BookRecommendations, s.promptContext(ctx, ""))

	return &RecommendationsResponse{
		Recommendations: ParseRecommendations(res.Text),
		Origin:          res.Origin,
		DemoMode:        res.Origin == OriginFallback,
		IsLoading:       s.orchestrator.State(BookRecommendations) == StatePending,
	}, nil
}

func (s *service) Summary(ctx context.Context, title string) (*SummaryResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	res := s.orchestrator.Generate(ctx, BookSummary, s.promptContext(ctx, title))

	return &SummaryResponse{
		Summary:   ParseSummary(res.Text, title),
		Origin:    res.Origin,
		DemoMode:  res.Origin == OriginFallback,
		IsLoading: s.orchestrator.State(BookSummary) == StatePending,
	}, nil
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !req.Type.IsValid() {
		return nil, ErrInvalidRequestType
	}

	res := s.orchestrator.Generate(ctx, req.Type, s.promptContext(ctx, strings.TrimSpace(req.Title)))

	return &GenerateResponse{
		Type:     req.Type,
		Text:     res.Text,
		Origin:   res.Origin,
		Fallback: res.Origin == OriginFallback,
	}, nil
}

func (s *service) State(ctx context.Context, t RequestType) (*StateResponse, error) {
	if !t.IsValid() {
		return nil, ErrInvalidRequestType
	}
	state := s.orchestrator.State(t)
	return &StateResponse{Type: t, State: state, IsLoading: state == StatePending}, nil
}

// promptContext degrades to an empty context when the library cannot be
// read; the orchestrator still produces text from it.
func (s *service) promptContext(ctx context.Context, title string) PromptContext {
	var pc PromptContext

	snap, err := s.library.Snapshot(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Building AI prompt without library data")
	} else {
		pc = NewPromptContext(snap)
	}

	if title != "" {
		pc.BookTitle = title
		if err == nil {
			if book, ferr := s.library.FindByTitle(ctx, title); ferr == nil && book != nil {
				pc.BookTitle = book.Title
				pc.BookAuthor = book.Author
			}
		}
	}
	return pc
}

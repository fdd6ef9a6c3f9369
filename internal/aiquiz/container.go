package aiquiz

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"github.com/saulo-duarte/chronos-reading/internal/library"
)

type AIQuizContainer struct {
	Handler      *Handler
	Service      Service
	Orchestrator *Orchestrator
}

// NewAIQuizContainer never fails on a missing or broken Gemini setup; the
// orchestrator then serves fallback content only.
func NewAIQuizContainer(ctx context.Context, s config.Settings, lib library.Service) *AIQuizContainer {
	log := config.WithContext(ctx)

	provider, err := NewGeminiProvider(ctx, s.GeminiAPIKey, s.GeminiModel)
	switch {
	case errors.Is(err, ErrProviderUnavailable):
		log.Warn("GEMINI_API_KEY not set, AI features run in demo mode")
		provider = nil
	case err != nil:
		log.WithError(err).Error("Gemini provider unavailable, AI features run in demo mode")
		provider = nil
	}

	orchestrator := NewOrchestrator(provider, GenerationParams{
		Temperature:     s.AITemperature,
		MaxOutputTokens: s.AIMaxOutputTokens,
	}, s.AITimeout)
	service := NewService(orchestrator, lib)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler:      handler,
		Service:      service,
		Orchestrator: orchestrator,
	}
}

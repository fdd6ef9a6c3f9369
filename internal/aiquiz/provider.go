package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"google.golang.org/genai"
)

var (
	ErrProviderUnavailable = errors.New("text generation provider not configured")
	ErrEmptyResponse       = errors.New("empty response from model")
)

type GenerationParams struct {
	Temperature     float32
	MaxOutputTokens int32
}

type Provider interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrProviderUnavailable
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(params.Temperature),
			MaxOutputTokens: params.MaxOutputTokens,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AI] Raw Gemini response:\n%s", raw)

	clean := stripCodeFence(raw)
	if clean == "" {
		return "", ErrEmptyResponse
	}
	return clean, nil
}

func stripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		if nl := strings.IndexByte(clean, '\n'); nl >= 0 && !strings.ContainsAny(clean[:nl], " :") {
			clean = clean[nl+1:]
		}
	}
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(strings.Trim(clean, "`"))
}

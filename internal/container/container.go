package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/chronos-reading/internal/aiquiz"
	"github.com/saulo-duarte/chronos-reading/internal/config"
	"github.com/saulo-duarte/chronos-reading/internal/kvstore"
	"github.com/saulo-duarte/chronos-reading/internal/library"
	"github.com/saulo-duarte/chronos-reading/internal/quiz"
	"github.com/saulo-duarte/chronos-reading/internal/router"
)

type Container struct {
	Settings        config.Settings
	Store           kvstore.Store
	Library         library.Service
	QuizContainer   *quiz.QuizContainer
	AIQuizContainer *aiquiz.AIQuizContainer
}

func New(ctx context.Context, settings config.Settings) (*Container, error) {
	config.Init(settings)

	store, err := kvstore.Open(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	lib := library.NewService(library.NewRepository(store))

	quizContainer, err := quiz.NewQuizContainer(ctx, store, settings.Location)
	if err != nil {
		return nil, fmt.Errorf("load quizzes: %w", err)
	}
	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, settings, lib)

	return &Container{
		Settings:        settings,
		Store:           store,
		Library:         lib,
		QuizContainer:   quizContainer,
		AIQuizContainer: aiQuizContainer,
	}, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		AIQuizHandler: c.AIQuizContainer.Handler,
		QuizHandler:   c.QuizContainer.Handler,
		CORSOrigins:   c.Settings.CORSOrigins,
	})
}

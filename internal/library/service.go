package library

import (
	"context"
	"strings"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	FindByTitle(ctx context.Context, title string) (*Book, error)
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// FindByTitle matches case-insensitively and returns nil when nothing matches.
func (s *service) FindByTitle(ctx context.Context, title string) (*Book, error) {
	books, err := s.repo.Books(ctx)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	for i := range books {
		if strings.EqualFold(books[i].Title, title) {
			return &books[i], nil
		}
	}
	return nil, nil
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		books []Book
		words []VocabularyWord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = s.repo.Books(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		words, err = s.repo.Vocabulary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load library snapshot")
		return nil, err
	}

	return &Snapshot{
		Books:      books,
		Vocabulary: words,
		Stats:      ComputeStats(books),
		Weekly:     seedWeekly(),
		Genres:     seedGenres(),
	}, nil
}

// ComputeStats counts pages of finished books in full and the current page of
// books being read.
func ComputeStats(books []Book) ReadingStats {
	stats := ReadingStats{
		TotalBooks:          len(books),
		TotalReadingTime:    seedReadingTime,
		AverageReadingSpeed: seedReadingSpeed,
	}
	for _, b := range books {
		switch b.Status {
		case COMPLETED:
			stats.CompletedBooks++
			stats.TotalPages += b.Pages
		case READING:
			stats.InProgressBooks++
			stats.TotalPages += b.CurrentPage
		}
	}
	return stats
}

func CountMastery(words []VocabularyWord, m Mastery) int {
	n := 0
	for _, w := range words {
		if w.Mastery == m {
			n++
		}
	}
	return n
}

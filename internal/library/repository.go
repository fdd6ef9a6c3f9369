package library

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/chronos-reading/internal/kvstore"
)

const (
	booksKey      = "books"
	vocabularyKey = "vocabulary"
)

type Repository interface {
	Books(ctx context.Context) ([]Book, error)
	Vocabulary(ctx context.Context) ([]VocabularyWord, error)
}

type repository struct {
	store kvstore.Store
}

// NewRepository reads books and vocabulary from the store and falls back to
// the built-in sample data when a key has never been written.
func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Books(ctx context.Context) ([]Book, error) {
	var books []Book
	found, err := r.store.Get(ctx, booksKey, &books)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	if !found {
		return seedBooks(), nil
	}
	return books, nil
}

func (r *repository) Vocabulary(ctx context.Context) ([]VocabularyWord, error) {
	var words []VocabularyWord
	found, err := r.store.Get(ctx, vocabularyKey, &words)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	if !found {
		return seedVocabulary(), nil
	}
	return words, nil
}

package quiz

import (
	"context"
	"testing"

	"github.com/saulo-duarte/chronos-reading/internal/kvstore"
	util "github.com/saulo-duarte/chronos-reading/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewHistoryRepository(store)

	missing, err := repo.Get(ctx, "4")
	require.NoError(t, err)
	assert.Nil(t, missing)

	empty, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, &HistorySummary{Recent: []HistoryEntry{}}, empty)

	d, _ := util.ParseDate("2025-04-01")
	require.NoError(t, repo.Save(ctx, HistoryEntry{QuizID: "2", BookID: "4", Date: d, ScorePercent: 90}))
	require.NoError(t, repo.Save(ctx, HistoryEntry{QuizID: "2", BookID: "4", Date: d, ScorePercent: 40}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 40, all["4"].ScorePercent)
}

func TestHistoryRepositoryReadsLegacyLayout(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "quizHistory", map[string]any{
		"6": map[string]any{"date": "2025-04-03", "score": 85},
	}))

	entry, err := NewHistoryRepository(store).Get(ctx, "6")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "6", entry.BookID)
	assert.Equal(t, 85, entry.ScorePercent)
	assert.Equal(t, "2025-04-03", entry.Date.String())
}

package kvstore

import (
	"context"
	"strings"
	"testing"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type entry struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		var got map[string]entry
		ok, err := s.Get(ctx, "quizHistory", &got)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		in := map[string]entry{"1": {Date: "2026-10-19", Score: 67}}
		require.NoError(t, s.Set(ctx, "quizHistory", in))

		var got map[string]entry
		ok, err := s.Get(ctx, "quizHistory", &got)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, in, got)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "quizHistory", map[string]entry{"1": {Date: "2026-10-19", Score: 100}}))

		var got map[string]entry
		ok, err := s.Get(ctx, "quizHistory", &got)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 100, got["1"].Score)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		assert.ErrorIs(t, s.Set(ctx, "", 1), ErrEmptyKey)
		var v int
		_, err := s.Get(ctx, "", &v)
		assert.ErrorIs(t, err, ErrEmptyKey)
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestGormStoreSQLite(t *testing.T) {
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	s, err := NewGormStore(db)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestSealedStore(t *testing.T) {
	c, err := config.NewCipher("01234567890123456789012345678901")
	require.NoError(t, err)

	inner := NewMemoryStore()
	s := NewSealedStore(inner, c)
	exerciseStore(t, s)

	t.Run("InnerHoldsCiphertext", func(t *testing.T) {
		var raw string
		ok, err := inner.Get(context.Background(), "quizHistory", &raw)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotContains(t, raw, "2026-10-19")
	})
}

func TestOpenMemory(t *testing.T) {
	s, err := Open(context.Background(), config.Settings{KVDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(context.Background(), config.Settings{KVDriver: "memory", CryptoKey: "01234567890123456789012345678901"})
	require.NoError(t, err)
	assert.IsType(t, &SealedStore{}, s)

	_, err = Open(context.Background(), config.Settings{KVDriver: "cassandra"})
	assert.Error(t, err)
}

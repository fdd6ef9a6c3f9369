package quiz

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/saulo-duarte/chronos-reading/internal/kvstore"
)

const (
	historyKey         = "quizHistory"
	recentHistoryLimit = 2
)

type HistoryRepository interface {
	Save(ctx context.Context, entry HistoryEntry) error
	Get(ctx context.Context, bookID string) (*HistoryEntry, error)
	All(ctx context.Context) (map[string]HistoryEntry, error)
	Summary(ctx context.Context) (*HistorySummary, error)
}

type historyRepository struct {
	// mu serializes the read-modify-write of the shared history document.
	mu    sync.Mutex
	store kvstore.Store
}

// NewHistoryRepository keeps every entry in one document keyed by book id,
// so a retake overwrites the previous result.
func NewHistoryRepository(store kvstore.Store) HistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) Save(ctx context.Context, entry HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.All(ctx)
	if err != nil {
		return err
	}
	all[entry.BookID] = entry
	return r.store.Set(ctx, historyKey, all)
}

func (r *historyRepository) Get(ctx context.Context, bookID string) (*HistoryEntry, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := all[bookID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (r *historyRepository) All(ctx context.Context) (map[string]HistoryEntry, error) {
	all := make(map[string]HistoryEntry)
	if _, err := r.store.Get(ctx, historyKey, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = make(map[string]HistoryEntry)
	}
	for bookID, entry := range all {
		if entry.BookID == "" {
			entry.BookID = bookID
			all[bookID] = entry
		}
	}
	return all, nil
}

func (r *historyRepository) Summary(ctx context.Context) (*HistorySummary, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(all), nil
}

// summarize averages every entry and keeps the most recent ones, newest first.
func summarize(all map[string]HistoryEntry) *HistorySummary {
	summary := &HistorySummary{Completed: len(all), Recent: []HistoryEntry{}}
	if len(all) == 0 {
		return summary
	}

	entries := make([]HistoryEntry, 0, len(all))
	total := 0
	for _, entry := range all {
		entries = append(entries, entry)
		total += entry.ScorePercent
	}
	summary.AverageScore = int(math.Round(float64(total) / float64(len(entries))))

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date.Time) {
			return entries[i].Date.After(entries[j].Date.Time)
		}
		return entries[i].BookID < entries[j].BookID
	})
	if len(entries) > recentHistoryLimit {
		entries = entries[:recentHistoryLimit]
	}
	summary.Recent = entries
	return summary
}

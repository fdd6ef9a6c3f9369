// Package kvstore persists JSON documents under string keys.
package kvstore

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("kvstore: empty key")

// Store reads and writes JSON-serializable values by key. Writes are last-write-wins.
type Store interface {
	// Get decodes the value stored under key into dst. It reports false when
	// nothing is stored under key.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

package repository

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the raw persisted storage under the session store.
// Implementations are last-write-wins; expiry is their only consistency rule.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetDel returns the value under key and removes it in one step, or
	// ErrKeyNotFound. Of two concurrent callers at most one gets the value.
	GetDel(ctx context.Context, key string) ([]byte, error)

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

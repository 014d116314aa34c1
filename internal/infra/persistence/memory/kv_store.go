// Package memory is the in-process session storage backend. It is the default
// for single-replica deployments and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"mycloudmen/internal/domain/repository"
)

const defaultCleanupInterval = time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// KVStore is a mutex-guarded map with per-key expiry.
type KVStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time

	stop chan struct{}
	once sync.Once
}

var _ repository.KVStore = (*KVStore)(nil)

// NewKVStore starts a store that purges expired keys every cleanupInterval.
func NewKVStore(cleanupInterval time.Duration) *KVStore {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	s := &KVStore{
		entries: make(map[string]entry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.cleanupLoop(cleanupInterval)

	return s
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || e.expired(s.now()) {
		return nil, repository.ErrKeyNotFound
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)

	return out, nil
}

func (s *KVStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()

	return nil
}

func (s *KVStore) GetDel(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	delete(s.entries, key)
	if e.expired(s.now()) {
		return nil, repository.ErrKeyNotFound
	}

	return e.value, nil
}

func (s *KVStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}

	return nil
}

// Len counts live keys.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	n := 0
	for _, e := range s.entries {
		if !e.expired(now) {
			n++
		}
	}

	return n
}

// Close stops the cleanup loop.
func (s *KVStore) Close() error {
	s.once.Do(func() { close(s.stop) })

	return nil
}

func (s *KVStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
}

func (s *KVStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

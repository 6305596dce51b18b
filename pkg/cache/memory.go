package cache

import (
	"context"
	"sync"
	"time"

	"github.com/showcasehq/showcase/pkg/observability"
)

// MemoryStore is an in-process store. It is the default backend when no
// shared store is configured and is also used heavily in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a value from the store.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && s.now().After(entry.expiresAt)) {
		observability.Cache().OnCacheMiss(ctx, "memory")
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, "memory")
	return entry.data, true, nil
}

// Set stores a value with the given TTL. A TTL of 0 means no expiration.
func (s *MemoryStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	observability.Cache().OnCacheSet(ctx, "memory", len(data))
	return nil
}

// Delete removes a value from the store.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Close does nothing for memory stores.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

package cache

import (
	"context"
	"time"
)

// NullStore is a no-op store that never stores anything.
// Useful for testing or when snapshot persistence should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Get always returns a cache miss.
func (s *NullStore) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (s *NullStore) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

// Delete does nothing.
func (s *NullStore) Delete(_ context.Context, _ string) error {
	return nil
}

// Close does nothing.
func (s *NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)

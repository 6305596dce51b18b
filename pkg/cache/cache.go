// Package cache provides pluggable byte stores used for the aggregated
// project snapshot.
//
// The aggregator keeps its authoritative single-slot cache in memory; a Store
// sits underneath it so a restarted process can warm-start within the TTL and
// multiple instances can share one refresh. Backends: in-process memory,
// filesystem, Redis, and a no-op null store.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned by helpers when an item is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Store is a byte-oriented cache with per-entry TTL.
//
// Get reports (data, true, nil) on a fresh hit and (nil, false, nil) on a
// miss or expired entry. Implementations treat corrupt entries as misses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be in-memory, Redis, or any other caching solution.
//
// Lookup of an entry whose TTL has passed must behave the same as a miss;
// implementations are free to reclaim expired entries lazily.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}

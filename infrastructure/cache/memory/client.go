// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Expiry is checked lazily on lookup; no background eviction runs

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or its TTL has passed.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface for short-lived processes.
// The cleanup interval is disabled, so expired entries occupy memory until
// the next lookup of their key or process restart. Long-lived deployments
// should use the redis backend instead.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance. defaultTTL is
// used when Set is called with ttl 0.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, 0),
	}
}

// Get retrieves a value from the cache. An expired entry behaves exactly
// like a missing one.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}
	data, ok := val.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value with the given TTL. A ttl of 0 uses the default; a
// negative ttl stores the value without expiry.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	switch {
	case ttl == 0:
		c.cache.SetDefault(key, valueCopy)
	case ttl < 0:
		c.cache.Set(key, valueCopy, gocache.NoExpiration)
	default:
		c.cache.Set(key, valueCopy, ttl)
	}
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

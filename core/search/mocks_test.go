package search

import (
	"context"
	"sync"
	"time"

	"serp-api/core/domain"
)

// stubProvider is a scripted SearchProvider for orchestrator tests
type stubProvider struct {
	name       string
	searchFunc func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
	calls      int
}

func (p *stubProvider) Name() string {
	return p.name
}

func (p *stubProvider) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	p.calls++
	if p.searchFunc != nil {
		return p.searchFunc(ctx, query)
	}
	return &domain.SearchResponse{Query: query.Query, Provider: p.name}, nil
}

// fakeCache is an in-memory Cache with controllable expiry for tests
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]fakeEntry
	now     func() time.Time
}

type fakeEntry struct {
	value  []byte
	expiry time.Time
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]fakeEntry),
		now:     time.Now,
	}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiry) {
		return nil, errCacheMiss
	}
	return entry.value, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = fakeEntry{value: value, expiry: c.now().Add(ttl)}
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// expireAll rewinds every entry's expiry into the past
func (c *fakeCache) expireAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		e.expiry = time.Now().Add(-time.Minute)
		c.entries[k] = e
	}
}

func (c *fakeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var errCacheMiss = &cacheMissError{}

type cacheMissError struct{}

func (*cacheMissError) Error() string { return "cache: key not found" }

// results fabricates n organic results for stub providers
func results(n int) []domain.OrganicResult {
	out := make([]domain.OrganicResult, n)
	for i := range out {
		out[i] = domain.OrganicResult{
			Position: i + 1,
			Title:    "result",
			URL:      "https://example.net/r",
			Domain:   "example.net",
		}
	}
	return out
}

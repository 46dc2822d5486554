// ABOUTME: Fallback orchestrator sequencing provider adapters with cache-then-fallback logic
// ABOUTME: Guarantees a populated response for every valid query, degrading to synthetic data

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"serp-api/core/domain"
	"serp-api/core/errors"
	"serp-api/core/interfaces"
)

// DefaultCacheTTL is the fixed TTL for resolved responses.
const DefaultCacheTTL = time.Hour

// cacheKeyPrefix namespaces resolver entries in a shared cache.
const cacheKeyPrefix = "search:serp"

// Options tunes resolver policy.
type Options struct {
	// CacheTTL overrides DefaultCacheTTL when positive
	CacheTTL time.Duration

	// CacheMockResponses controls whether synthetic fallback responses
	// are written to the cache. Off by default so a transient provider
	// outage is not baked in for a full TTL.
	CacheMockResponses bool
}

// Service resolves search queries through an ordered provider chain with
// caching. It never fails outward for a valid query: when every provider
// comes up empty the mock generator produces the response.
type Service struct {
	deps      interfaces.Dependencies
	providers []interfaces.SearchProvider
	opts      Options
}

// NewService creates a resolver over the given providers. Provider order is
// priority order; unconfigured adapters are simply not passed in.
func NewService(deps interfaces.Dependencies, providers []interfaces.SearchProvider, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Service{
		deps:      deps,
		providers: providers,
		opts:      opts,
	}
}

// Providers returns the names of the configured providers in priority order.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// Resolve answers a query from cache when possible, otherwise walks the
// provider chain and falls back to the mock generator. The returned error
// is non-nil only for invalid input (empty query).
func (s *Service) Resolve(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	query = query.Normalize()
	if query.Query == "" {
		return nil, &errors.ValidationError{Field: "q", Message: "query cannot be empty"}
	}

	key := cacheKey(query)
	if cached := s.cacheLookup(ctx, key); cached != nil {
		cached.Cached = true
		return cached, nil
	}

	response, failures := s.walkProviders(ctx, query)

	isMock := response == nil
	if isMock {
		response = GenerateMockResponse(query)
	}
	response.Cached = false
	response.Degraded = isMock || len(failures) > 0
	response.FailureReasons = failures

	if !isMock || s.opts.CacheMockResponses {
		s.cacheStore(ctx, key, response)
	}

	return response, nil
}

// walkProviders tries each adapter in priority order and returns the first
// non-empty response, plus one failure reason per adapter that produced
// nothing. A nil response means the chain is exhausted.
func (s *Service) walkProviders(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, []string) {
	var failures []string
	for _, provider := range s.providers {
		resp, err := provider.Search(ctx, query)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %s", provider.Name(), err.Error()))
			s.logProviderFailure(provider.Name(), err)
			continue
		}
		if resp == nil || len(resp.Organic) == 0 {
			failures = append(failures, fmt.Sprintf("%s: %s", provider.Name(), errors.ErrNoResults.Error()))
			continue
		}

		if s.deps.Logger != nil {
			s.deps.Logger.Info("Provider resolved query", map[string]interface{}{
				"provider": provider.Name(),
				"query":    query.Query,
				"results":  len(resp.Organic),
			})
		}
		return resp, failures
	}
	return nil, failures
}

func (s *Service) logProviderFailure(name string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn("Provider failed, trying next", map[string]interface{}{
		"provider": name,
		"error":    err.Error(),
	})
}

// cacheLookup returns a decoded cached response or nil on miss. Cache
// problems degrade to a miss rather than failing resolution.
func (s *Service) cacheLookup(ctx context.Context, key string) *domain.SearchResponse {
	if s.deps.Cache == nil {
		return nil
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var response domain.SearchResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil
	}
	return &response
}

func (s *Service) cacheStore(ctx context.Context, key string, response *domain.SearchResponse) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// cacheKey builds the composite key from the parameters that change the
// result set. HL is deliberately excluded: providers treat it as a hint
// within the same GL market.
func cacheKey(query domain.SearchQuery) string {
	return fmt.Sprintf("%s:%s:%d:%s:%s", cacheKeyPrefix, query.Query, query.Num, query.GL, query.Type)
}

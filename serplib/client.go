// ABOUTME: Embeddable client for SERP resolution without HTTP server dependencies
// ABOUTME: Offers a clean API over the shared orchestrator for in-process callers

// Package serplib embeds the SERP resolution chain in another Go program.
// A Client owns its cache, HTTP client, and provider chain; construct one
// per process and share it.
//
//	client, err := serplib.New(
//		serplib.WithSerperAPIKey(os.Getenv("SERPER_API_KEY")),
//	)
//	resp, err := client.Search(ctx, "coffee shops", serplib.Num(5))
package serplib

import (
	"context"

	"serp-api/core/domain"
	"serp-api/core/interfaces"
	"serp-api/core/search"
	"serp-api/core/search/providers"
)

// Client is the main entry point for the library
type Client struct {
	service *search.Service
	config  Config
}

// New creates a client with the given options applied over the defaults.
func New(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	config.materialize()

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	var chain []interfaces.SearchProvider
	if config.SearchdURL != "" {
		chain = append(chain, providers.NewSearchd(config.SearchdURL, deps))
	}
	if config.SearxNGURL != "" {
		chain = append(chain, providers.NewSearxNG(config.SearxNGURL, deps))
	}
	if !config.DisableMirrors {
		chain = append(chain, providers.NewMirrors(config.Mirrors, deps))
	}
	if config.SerperAPIKey != "" {
		chain = append(chain, providers.NewSerper(config.SerperAPIKey, deps))
	}

	service := search.NewService(deps, chain, search.Options{
		CacheTTL:           config.CacheTTL,
		CacheMockResponses: config.CacheMockResponses,
	})

	return &Client{service: service, config: config}, nil
}

// Search resolves a free-text query with optional parameter overrides.
func (c *Client) Search(ctx context.Context, query string, opts ...QueryOption) (*domain.SearchResponse, error) {
	q := domain.SearchQuery{Query: query}
	for _, opt := range opts {
		opt(&q)
	}
	return c.service.Resolve(ctx, q)
}

// Resolve resolves a fully specified query value object.
func (c *Client) Resolve(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	return c.service.Resolve(ctx, query)
}

// Providers returns the configured provider chain in priority order.
func (c *Client) Providers() []string {
	return c.service.Providers()
}

// QueryOption overrides one search parameter
type QueryOption func(*domain.SearchQuery)

// Num sets the requested result count
func Num(n int) QueryOption {
	return func(q *domain.SearchQuery) { q.Num = n }
}

// GL sets the geography hint
func GL(gl string) QueryOption {
	return func(q *domain.SearchQuery) { q.GL = gl }
}

// HL sets the language hint
func HL(hl string) QueryOption {
	return func(q *domain.SearchQuery) { q.HL = hl }
}

// News requests news results instead of web results
func News() QueryOption {
	return func(q *domain.SearchQuery) { q.Type = domain.ResultTypeNews }
}

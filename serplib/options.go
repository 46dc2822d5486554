// ABOUTME: Configuration options for the serplib client
// ABOUTME: Provides functional options pattern for flexible client configuration

package serplib

import (
	"errors"
	"time"

	"serp-api/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// Cache backs the response cache; defaults to in-memory
	Cache interfaces.Cache

	// HTTPClient performs all outbound provider requests
	HTTPClient interfaces.HTTPClient

	// Logger receives structured diagnostics; nil disables logging
	Logger interfaces.Logger

	// SearchdURL enables the primary self-hosted adapter when non-empty
	SearchdURL string

	// SearxNGURL enables the secondary self-hosted adapter when non-empty
	SearxNGURL string

	// SerperAPIKey enables the commercial adapter when non-empty
	SerperAPIKey string

	// Mirrors overrides the built-in public mirror list
	Mirrors []string

	// DisableMirrors removes the public-mirror adapter from the chain
	DisableMirrors bool

	// CacheTTL is the lifetime of cached responses
	CacheTTL time.Duration

	// CacheMockResponses caches synthetic fallback responses like real ones
	CacheMockResponses bool

	// Timeout bounds each outbound provider request
	Timeout time.Duration
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		if cache == nil {
			return errors.New("cache cannot be nil")
		}
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return errors.New("HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithSearchdURL enables the primary self-hosted search service
func WithSearchdURL(url string) Option {
	return func(c *Config) error {
		c.SearchdURL = url
		return nil
	}
}

// WithSearxNGURL enables the secondary self-hosted SearxNG instance
func WithSearxNGURL(url string) Option {
	return func(c *Config) error {
		c.SearxNGURL = url
		return nil
	}
}

// WithSerperAPIKey enables the commercial Serper adapter
func WithSerperAPIKey(key string) Option {
	return func(c *Config) error {
		c.SerperAPIKey = key
		return nil
	}
}

// WithMirrors overrides the public mirror list
func WithMirrors(mirrors []string) Option {
	return func(c *Config) error {
		c.Mirrors = mirrors
		return nil
	}
}

// WithoutMirrors removes the public-mirror adapter from the chain
func WithoutMirrors() Option {
	return func(c *Config) error {
		c.DisableMirrors = true
		return nil
	}
}

// WithCacheTTL sets the lifetime of cached responses
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return errors.New("cache TTL must be positive")
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithCacheMockResponses caches synthetic fallback responses like real ones
func WithCacheMockResponses(enabled bool) Option {
	return func(c *Config) error {
		c.CacheMockResponses = enabled
		return nil
	}
}

// WithTimeout bounds each outbound provider request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return errors.New("timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

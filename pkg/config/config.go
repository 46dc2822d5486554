// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, providers, cache, and scheduler

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Providers contains search backend configuration
	Providers ProvidersConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Scheduler contains cache warm-up configuration
	Scheduler SchedulerConfig

	// LogLevel sets the minimum log level (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AuthSecret, when non-empty, is required in the X-Auth-Secret
	// header of every /search request
	AuthSecret string

	// RateLimit is the allowed requests per IP per minute
	RateLimit int
}

// ProvidersConfig holds search backend configuration. Every field is
// independently optional; an unset backend is skipped, not attempted.
type ProvidersConfig struct {
	// SearchdURL is the base URL of the primary self-hosted search service
	SearchdURL string

	// SearxNGURL is the base URL of the secondary self-hosted SearxNG instance
	SearxNGURL string

	// SerperAPIKey authenticates against the commercial Serper API
	SerperAPIKey string

	// Mirrors overrides the built-in public mirror list when non-empty
	Mirrors []string

	// HTTPTimeout bounds each outbound provider request, in seconds
	HTTPTimeout int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// TTL is the response cache lifetime in seconds
	TTL int

	// CacheMockResponses controls whether synthetic fallback responses
	// are cached like real ones
	CacheMockResponses bool

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SchedulerConfig holds cache warm-up configuration for cmd/scheduler
type SchedulerConfig struct {
	// WarmQueries are the queries resolved on every scheduler tick
	WarmQueries []string

	// Schedule is a cron expression (robfig/cron syntax)
	Schedule string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8080"),
			AuthSecret: os.Getenv("AUTH_SECRET"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Providers: ProvidersConfig{
			SearchdURL:   strings.TrimSuffix(os.Getenv("SEARCHD_URL"), "/"),
			SearxNGURL:   strings.TrimSuffix(os.Getenv("SEARXNG_URL"), "/"),
			SerperAPIKey: os.Getenv("SERPER_API_KEY"),
			Mirrors:      getEnvAsList("SEARXNG_MIRRORS"),
			HTTPTimeout:  getEnvAsIntOrDefault("HTTP_TIMEOUT", 8),
		},
		Cache: CacheConfig{
			Type:               getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:                getEnvAsIntOrDefault("CACHE_TTL", 3600),
			CacheMockResponses: getEnvAsBoolOrDefault("CACHE_MOCK_RESPONSES", false),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Scheduler: SchedulerConfig{
			WarmQueries: getEnvAsList("WARM_QUERIES"),
			Schedule:    getEnvOrDefault("WARM_SCHEDULE", "@hourly"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping
// empty entries.
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.TTL < 1 {
		return errors.New("cache TTL must be at least 1 second")
	}

	if c.Providers.HTTPTimeout < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	return nil
}

// HasAnyProvider reports whether at least one real backend is configured.
// When false, every request resolves through the public mirrors or the
// mock generator.
func (c *Config) HasAnyProvider() bool {
	return c.Providers.SearchdURL != "" ||
		c.Providers.SearxNGURL != "" ||
		c.Providers.SerperAPIKey != ""
}

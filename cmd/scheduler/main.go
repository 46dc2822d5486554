// ABOUTME: Scheduler entry point resolving warm-up queries on a cron schedule
// ABOUTME: Keeps the response cache hot so interactive callers get cache hits

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"serp-api/core/interfaces"
	"serp-api/infrastructure/cache/memory"
	"serp-api/infrastructure/cache/redis"
	logrusimpl "serp-api/infrastructure/logger/logrus"
	"serp-api/pkg/config"
	"serp-api/serplib"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if len(cfg.Scheduler.WarmQueries) == 0 {
		log.Fatal("WARM_QUERIES must list at least one query")
	}

	logger := logrusimpl.NewLogger(cfg.LogLevel)
	logger.Info("Starting SERP warm-up scheduler", map[string]interface{}{
		"schedule": cfg.Scheduler.Schedule,
		"queries":  len(cfg.Scheduler.WarmQueries),
	})

	client, err := buildClient(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build search client: %v", err)
	}

	warm := func() {
		for _, query := range cfg.Scheduler.WarmQueries {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			resp, err := client.Search(ctx, query)
			cancel()
			if err != nil {
				logger.Error("Warm-up query failed", map[string]interface{}{
					"query": query,
					"error": err.Error(),
				})
				continue
			}
			logger.Info("Warm-up query resolved", map[string]interface{}{
				"query":    query,
				"provider": resp.Provider,
				"cached":   resp.Cached,
				"degraded": resp.Degraded,
			})
		}
	}

	// Populate the cache immediately; the cron schedule keeps it fresh.
	warm()

	c := cron.New()
	if _, err := c.AddFunc(cfg.Scheduler.Schedule, warm); err != nil {
		log.Fatalf("Invalid schedule %q: %v", cfg.Scheduler.Schedule, err)
	}
	c.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Stopping scheduler...", nil)
	<-c.Stop().Done()
	logger.Info("Scheduler stopped", nil)
}

// buildClient assembles a serplib client from the environment config. The
// redis cache backend matters here: warmed entries are only useful when
// the API deployment reads the same cache.
func buildClient(cfg *config.Config, logger interfaces.Logger) (*serplib.Client, error) {
	cacheTTL := time.Duration(cfg.Cache.TTL) * time.Second

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return nil, err
		}
		cache = redisCache
	default:
		cache = memory.NewMemoryCache(cacheTTL)
	}

	opts := []serplib.Option{
		serplib.WithCache(cache),
		serplib.WithLogger(logger),
		serplib.WithCacheTTL(cacheTTL),
		serplib.WithCacheMockResponses(cfg.Cache.CacheMockResponses),
		serplib.WithTimeout(time.Duration(cfg.Providers.HTTPTimeout) * time.Second),
	}
	if cfg.Providers.SearchdURL != "" {
		opts = append(opts, serplib.WithSearchdURL(cfg.Providers.SearchdURL))
	}
	if cfg.Providers.SearxNGURL != "" {
		opts = append(opts, serplib.WithSearxNGURL(cfg.Providers.SearxNGURL))
	}
	if cfg.Providers.SerperAPIKey != "" {
		opts = append(opts, serplib.WithSerperAPIKey(cfg.Providers.SerperAPIKey))
	}
	if len(cfg.Providers.Mirrors) > 0 {
		opts = append(opts, serplib.WithMirrors(cfg.Providers.Mirrors))
	}

	return serplib.New(opts...)
}

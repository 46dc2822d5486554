// ABOUTME: Main entry point for the SERP resolver HTTP server
// ABOUTME: Wires together config, cache, providers, and the router

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serp-api/api"
	"serp-api/api/handlers"
	"serp-api/core/interfaces"
	"serp-api/core/search"
	"serp-api/core/search/providers"
	"serp-api/infrastructure/cache/memory"
	"serp-api/infrastructure/cache/redis"
	stdhttp "serp-api/infrastructure/http/standard"
	logrusimpl "serp-api/infrastructure/logger/logrus"
	"serp-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusimpl.NewLogger(cfg.LogLevel)
	logger.Info("Starting SERP resolver API", map[string]interface{}{
		"port":           cfg.Server.Port,
		"cache_type":     cfg.Cache.Type,
		"has_providers":  cfg.HasAnyProvider(),
		"cache_ttl_secs": cfg.Cache.TTL,
	})

	cacheTTL := time.Duration(cfg.Cache.TTL) * time.Second

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(cacheTTL)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(cacheTTL)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Providers.HTTPTimeout) * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	service := search.NewService(deps, buildProviderChain(cfg, deps), search.Options{
		CacheTTL:           cacheTTL,
		CacheMockResponses: cfg.Cache.CacheMockResponses,
	})
	logger.Info("Provider chain configured", map[string]interface{}{
		"providers": service.Providers(),
	})

	router := api.NewRouter(api.Config{
		Logger:     logger,
		AuthSecret: cfg.Server.AuthSecret,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}, handlers.NewSearchHandler(service), handlers.NewHealthHandler(service.Providers()))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildProviderChain registers adapters in priority order, skipping any
// backend whose configuration is absent. The public mirrors are always
// last in the chain of real providers; the mock generator lives inside
// the service as its terminal fallback.
func buildProviderChain(cfg *config.Config, deps interfaces.Dependencies) []interfaces.SearchProvider {
	var chain []interfaces.SearchProvider
	if cfg.Providers.SearchdURL != "" {
		chain = append(chain, providers.NewSearchd(cfg.Providers.SearchdURL, deps))
	}
	if cfg.Providers.SearxNGURL != "" {
		chain = append(chain, providers.NewSearxNG(cfg.Providers.SearxNGURL, deps))
	}
	chain = append(chain, providers.NewMirrors(cfg.Providers.Mirrors, deps))
	if cfg.Providers.SerperAPIKey != "" {
		chain = append(chain, providers.NewSerper(cfg.Providers.SerperAPIKey, deps))
	}
	return chain
}

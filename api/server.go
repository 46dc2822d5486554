// ABOUTME: Router construction and middleware wiring for the HTTP deployment
// ABOUTME: Applies CORS, request logging, rate limiting, and shared-secret auth

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"serp-api/api/handlers"
	"serp-api/api/middleware"
	"serp-api/core/interfaces"
)

// Config holds configuration for the API router
type Config struct {
	Logger     interfaces.Logger
	AuthSecret string
	RateLimit  int           // requests per window, 0 disables
	RateWindow time.Duration // rate limit window
}

// NewRouter builds the chi router for the search service. CORS is
// permissive on every route and preflight OPTIONS requests answer 200,
// so browser clients can call the API directly.
func NewRouter(cfg Config, searchHandler *handlers.SearchHandler, healthHandler *handlers.HealthHandler) chi.Router {
	router := chi.NewRouter()

	// CORS must run before anything that can short-circuit the request
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.AuthHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	router.Get("/health", healthHandler.Health)

	router.Group(func(r chi.Router) {
		r.Use(middleware.SharedSecretMiddleware(cfg.AuthSecret))
		r.MethodFunc(http.MethodGet, "/search", searchHandler.Search)
		r.MethodFunc(http.MethodPost, "/search", searchHandler.Search)
	})

	return router
}

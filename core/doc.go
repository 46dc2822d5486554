// Package core contains the business logic for the SERP resolution API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SearchQuery, SearchResponse, OrganicResult)
// - search: Provider chain orchestration and the mock fallback generator
// - search/providers: Individual upstream provider adapters
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "serp-api/core/interfaces"
//	    "serp-api/core/search"
//	    "serp-api/core/search/providers"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the service with a provider chain
//	chain := []interfaces.SearchProvider{
//	    providers.NewSearxNG("https://searx.internal", deps),
//	    providers.NewMirrors(nil, deps),
//	}
//	svc := search.NewService(deps, chain, search.Options{})
//
//	// Resolve a query
//	resp, err := svc.Resolve(ctx, domain.SearchQuery{Query: "coffee shops"})
package core

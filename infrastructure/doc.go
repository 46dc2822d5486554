// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache with per-entry TTL and lazy expiry
// - cache/redis: Redis-based cache for sharing entries across deployments
// - http/standard: Standard library HTTP client with a bounded timeout
// - logger/logrus: Structured JSON logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
package infrastructure

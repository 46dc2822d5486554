// ABOUTME: SearchProvider abstracts one external search backend behind a common contract
// ABOUTME: Adapters normalize their native response shapes into domain.SearchResponse

package interfaces

import (
	"context"

	"serp-api/core/domain"
)

// SearchProvider is implemented by every search backend adapter. An adapter
// translates its provider's native response into the shared normalized
// schema. A returned error (or an empty Organic slice) means the
// orchestrator moves on to the next adapter in priority order; it must
// never abort the overall resolution.
type SearchProvider interface {
	// Name returns the provider identifier (e.g. "searxng", "serper").
	Name() string

	// Search executes the query against the backend and returns a
	// normalized response. Implementations must honor ctx cancellation
	// and bound their own network timeouts.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
}

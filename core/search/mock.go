// ABOUTME: Deterministic synthetic response generator, the chain's terminal fallback
// ABOUTME: Fabricates placeholder results so resolution never fails outward

package search

import (
	"fmt"
	"strings"

	"serp-api/core/domain"
)

// MockProviderName identifies synthetic responses in SearchResponse.Provider.
const MockProviderName = "mock"

// GenerateMockResponse fabricates a deterministic placeholder response for
// the query. It always yields exactly query.Num results with contiguous
// positions, derived from the first word of the query.
func GenerateMockResponse(query domain.SearchQuery) *domain.SearchResponse {
	word := query.Query
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	slug := strings.ToLower(word)

	organic := make([]domain.OrganicResult, query.Num)
	for i := range organic {
		organic[i] = domain.OrganicResult{
			Position: i + 1,
			Title:    fmt.Sprintf("%s resource %d", capitalize(word), i+1),
			URL:      fmt.Sprintf("https://example.com/%s-%d", slug, i+1),
			Snippet:  fmt.Sprintf("Placeholder result %d for %q.", i+1, query.Query),
			Domain:   "example.com",
		}
	}

	return &domain.SearchResponse{
		Query:   query.Query,
		Organic: organic,
		RelatedSearches: []string{
			"best " + query.Query,
			query.Query + " near me",
			query.Query + " reviews",
		},
		Provider: MockProviderName,
		Degraded: true,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ABOUTME: Search domain models shared by every provider adapter and the orchestrator
// ABOUTME: Defines the normalized query, result, and response value objects

package domain

import (
	"net/url"
	"strings"
)

// ResultType selects between web and news search results.
type ResultType string

const (
	// ResultTypeWeb requests organic web results
	ResultTypeWeb ResultType = "web"

	// ResultTypeNews requests news results
	ResultTypeNews ResultType = "news"
)

// Default query parameter values applied by Normalize.
const (
	DefaultNum = 10
	MaxNum     = 20
	DefaultGL  = "us"
	DefaultHL  = "en"
)

// SearchQuery is an immutable value object describing one resolution request.
// Construct it, call Normalize, and pass it by value.
type SearchQuery struct {
	// Query is the free-text search query
	Query string

	// Num is the maximum number of organic results requested
	Num int

	// GL is the geography hint (e.g. "us", "de")
	GL string

	// HL is the language hint (e.g. "en", "es")
	HL string

	// Type selects web or news results
	Type ResultType
}

// Normalize returns a copy of the query with defaults applied and Num
// clamped to [1, MaxNum]. The query text itself is trimmed but otherwise
// passed through verbatim to providers.
func (q SearchQuery) Normalize() SearchQuery {
	q.Query = strings.TrimSpace(q.Query)
	if q.Num <= 0 {
		q.Num = DefaultNum
	}
	if q.Num > MaxNum {
		q.Num = MaxNum
	}
	if q.GL == "" {
		q.GL = DefaultGL
	}
	if q.HL == "" {
		q.HL = DefaultHL
	}
	if q.Type != ResultTypeNews {
		q.Type = ResultTypeWeb
	}
	return q
}

// OrganicResult represents one ranked organic search result.
type OrganicResult struct {
	// Position is the 1-based rank of the result
	Position int

	// Title is the result's title text
	Title string

	// URL is the result's canonical URL
	URL string

	// Snippet is the summary text shown under the title
	Snippet string

	// Domain is the result's host with a leading "www." stripped,
	// or "" when the URL could not be parsed
	Domain string
}

// SearchResponse is the aggregate returned to callers of the resolver.
type SearchResponse struct {
	// Query is the original query text
	Query string

	// Organic holds the ranked results, relevance-descending
	Organic []OrganicResult

	// RelatedSearches holds provider-supplied suggestion strings; may be empty
	RelatedSearches []string

	// Provider identifies the adapter that produced the response, or "mock"
	Provider string

	// Cached is true when the response was served from cache
	Cached bool

	// Degraded is true when the response was synthesized by the mock
	// generator or at least one real provider failed along the way
	Degraded bool

	// FailureReasons carries one entry per provider that failed or
	// returned nothing; diagnostic only, never an error to the caller
	FailureReasons []string
}

// ExtractDomain derives the host from a raw URL, stripping a leading
// "www.". It fails soft: unparsable input yields "".
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

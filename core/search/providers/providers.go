// ABOUTME: Provider adapters translating external search backends into the shared schema
// ABOUTME: Shared helpers for response normalization used by every adapter

// Package providers contains one adapter per external search backend. Each
// adapter implements interfaces.SearchProvider and is responsible for
// normalizing its backend's native JSON shape into domain.SearchResponse.
// Adapters fail soft on missing fields and report transport problems as
// errors so the orchestrator can fall through to the next backend.
package providers

import "serp-api/core/domain"

// Provider identifiers as surfaced in SearchResponse.Provider.
const (
	NameSearchd = "searchd"
	NameSearxNG = "searxng"
	NameMirrors = "searxng-mirror"
	NameSerper  = "serper"
)

// firstNonEmpty returns the first non-empty string, used to pick between
// alternate field names in provider payloads.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// capResults truncates results to num entries and reassigns contiguous
// 1-based positions. Providers may return more rows than requested or
// rows with provider-native ranks; the normalized response always ranks
// 1..n with no gaps.
func capResults(results []domain.OrganicResult, num int) []domain.OrganicResult {
	if len(results) > num {
		results = results[:num]
	}
	for i := range results {
		results[i].Position = i + 1
		if results[i].Domain == "" {
			results[i].Domain = domain.ExtractDomain(results[i].URL)
		}
	}
	return results
}

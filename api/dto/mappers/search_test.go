package mappers

import (
	"testing"

	"serp-api/api/dto/requests"
	"serp-api/core/domain"
)

func TestToSearchQuery(t *testing.T) {
	req := requests.SearchRequest{Q: "coffee", Num: 5, GL: "de", HL: "de", Type: "news"}

	q := ToSearchQuery(req)

	if q.Query != "coffee" || q.Num != 5 || q.GL != "de" || q.HL != "de" {
		t.Errorf("unexpected query: %+v", q)
	}
	if q.Type != domain.ResultTypeNews {
		t.Errorf("Type = %q, want news", q.Type)
	}
}

func TestToSearchResponse_EmptyRelatedSearchesIsArray(t *testing.T) {
	resp := ToSearchResponse(&domain.SearchResponse{
		Query:    "x",
		Provider: "mock",
	})

	if resp.RelatedSearches == nil {
		t.Error("RelatedSearches should be an empty array, not null")
	}
	if resp.Organic == nil {
		t.Error("Organic should be an empty array, not null")
	}
}

func TestToSearchResponse_MapsFields(t *testing.T) {
	resp := ToSearchResponse(&domain.SearchResponse{
		Query: "coffee",
		Organic: []domain.OrganicResult{
			{Position: 1, Title: "T", URL: "https://example.com", Snippet: "S", Domain: "example.com"},
		},
		RelatedSearches: []string{"coffee beans"},
		Provider:        "searxng",
		Cached:          true,
		Degraded:        true,
		FailureReasons:  []string{"searchd: boom"},
	})

	if resp.Provider != "searxng" || !resp.Cached || !resp.Degraded {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(resp.Organic) != 1 || resp.Organic[0].Domain != "example.com" {
		t.Errorf("unexpected organic: %+v", resp.Organic)
	}
	if len(resp.FailureReasons) != 1 {
		t.Errorf("unexpected failure reasons: %v", resp.FailureReasons)
	}
}

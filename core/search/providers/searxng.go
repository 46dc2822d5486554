// ABOUTME: Secondary self-hosted SearxNG meta-search adapter
// ABOUTME: Expects a results JSON array with url/title/content plus suggestions

package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/url"

	"serp-api/core/domain"
	coreerrors "serp-api/core/errors"
	"serp-api/core/interfaces"
)

type searxngResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type searxngResponse struct {
	Results     []searxngResult `json:"results"`
	Suggestions []string        `json:"suggestions"`
}

// SearxNG is the adapter for a self-hosted SearxNG instance.
type SearxNG struct {
	baseURL string
	deps    interfaces.Dependencies
}

// NewSearxNG creates the SearxNG adapter for the given instance base URL.
func NewSearxNG(baseURL string, deps interfaces.Dependencies) *SearxNG {
	return &SearxNG{baseURL: baseURL, deps: deps}
}

// Name returns the provider identifier
func (p *SearxNG) Name() string {
	return NameSearxNG
}

// Search queries the instance's JSON API and normalizes its response
func (p *SearxNG) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	resp, err := searxngFetch(ctx, p.deps.HTTPClient, p.baseURL, query)
	if err != nil {
		return nil, err
	}
	resp.Provider = p.Name()
	return resp, nil
}

// searxngFetch performs one request against a SearxNG-shaped endpoint and
// normalizes the payload. Shared with the public-mirror adapter, which
// speaks the same API.
func searxngFetch(ctx context.Context, client interfaces.HTTPClient, baseURL string, query domain.SearchQuery) (*domain.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query.Query)
	params.Set("format", "json")
	params.Set("language", query.HL)
	params.Set("pageno", "1")
	if query.Type == domain.ResultTypeNews {
		params.Set("categories", "news")
	}
	endpoint := baseURL + "/search?" + params.Encode()

	resp, err := client.Get(ctx, endpoint)
	if err != nil {
		return nil, coreerrors.WrapError(err, "searxng request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			API:        NameSearxNG,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "searxng response read failed")
	}

	var payload searxngResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, coreerrors.WrapError(err, "searxng response parse failed")
	}

	organic := make([]domain.OrganicResult, 0, len(payload.Results))
	for _, item := range payload.Results {
		organic = append(organic, domain.OrganicResult{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Content,
		})
	}

	return &domain.SearchResponse{
		Query:           query.Query,
		Organic:         capResults(organic, query.Num),
		RelatedSearches: payload.Suggestions,
	}, nil
}

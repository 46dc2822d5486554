// ABOUTME: Primary self-hosted search service adapter
// ABOUTME: Expects an organic_results/organic JSON array with link/url, title, snippet/description

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"serp-api/core/domain"
	coreerrors "serp-api/core/errors"
	"serp-api/core/interfaces"
)

// searchdItem tolerates the two field spellings the service emits
// depending on version.
type searchdItem struct {
	Link        string `json:"link"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Description string `json:"description"`
}

type searchdResponse struct {
	OrganicResults []searchdItem `json:"organic_results"`
	Organic        []searchdItem `json:"organic"`
}

// Searchd is the adapter for the primary self-hosted search service.
type Searchd struct {
	baseURL string
	deps    interfaces.Dependencies
}

// NewSearchd creates the primary adapter. baseURL must be non-empty; the
// caller skips registration entirely when the service is not configured.
func NewSearchd(baseURL string, deps interfaces.Dependencies) *Searchd {
	return &Searchd{baseURL: baseURL, deps: deps}
}

// Name returns the provider identifier
func (p *Searchd) Name() string {
	return NameSearchd
}

// Search queries the service and normalizes its response
func (p *Searchd) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query.Query)
	params.Set("num", fmt.Sprintf("%d", query.Num))
	params.Set("gl", query.GL)
	params.Set("hl", query.HL)
	endpoint := fmt.Sprintf("%s/search?%s", p.baseURL, params.Encode())

	resp, err := p.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return nil, coreerrors.WrapError(err, "searchd request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			API:        p.Name(),
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "searchd response read failed")
	}

	var payload searchdResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, coreerrors.WrapError(err, "searchd response parse failed")
	}

	items := payload.OrganicResults
	if len(items) == 0 {
		items = payload.Organic
	}

	organic := make([]domain.OrganicResult, 0, len(items))
	for _, item := range items {
		organic = append(organic, domain.OrganicResult{
			Title:   item.Title,
			URL:     firstNonEmpty(item.Link, item.URL),
			Snippet: firstNonEmpty(item.Snippet, item.Description),
		})
	}

	return &domain.SearchResponse{
		Query:    query.Query,
		Organic:  capResults(organic, query.Num),
		Provider: p.Name(),
	}, nil
}

// ABOUTME: Commercial Serper.dev search API adapter
// ABOUTME: POSTs with an X-API-KEY header and selects the web or news endpoint

package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"serp-api/core/domain"
	coreerrors "serp-api/core/errors"
	"serp-api/core/interfaces"
)

const serperBaseURL = "https://google.serper.dev"

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
	GL  string `json:"gl"`
	HL  string `json:"hl"`
}

type serperItem struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

type serperResponse struct {
	Organic         []serperItem `json:"organic"`
	News            []serperItem `json:"news"`
	RelatedSearches []struct {
		Query string `json:"query"`
	} `json:"relatedSearches"`
}

// Serper is the adapter for the paid Serper.dev API.
type Serper struct {
	apiKey  string
	baseURL string
	deps    interfaces.Dependencies
}

// NewSerper creates the Serper adapter. apiKey must be non-empty; the
// caller skips registration entirely when no key is configured.
func NewSerper(apiKey string, deps interfaces.Dependencies) *Serper {
	return &Serper{apiKey: apiKey, baseURL: serperBaseURL, deps: deps}
}

// Name returns the provider identifier
func (p *Serper) Name() string {
	return NameSerper
}

// Search posts the query to the web or news endpoint depending on the
// result-type hint and normalizes the response.
func (p *Serper) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	endpoint := p.baseURL + "/search"
	if query.Type == domain.ResultTypeNews {
		endpoint = p.baseURL + "/news"
	}

	reqBody, err := json.Marshal(serperRequest{
		Q:   query.Query,
		Num: query.Num,
		GL:  query.GL,
		HL:  query.HL,
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "serper request encode failed")
	}

	headers := map[string]string{"X-API-KEY": p.apiKey}
	resp, err := p.deps.HTTPClient.Post(ctx, endpoint, bytes.NewReader(reqBody), headers)
	if err != nil {
		return nil, coreerrors.WrapError(err, "serper request failed")
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
		return nil, coreerrors.WrapError(err, "serper response read failed")
	}

	var payload serperResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, coreerrors.WrapError(err, "serper response parse failed")
	}

	items := payload.Organic
	if query.Type == domain.ResultTypeNews {
		items = payload.News
	}

	organic := make([]domain.OrganicResult, 0, len(items))
	for _, item := range items {
		organic = append(organic, domain.OrganicResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	related := make([]string, 0, len(payload.RelatedSearches))
	for _, r := range payload.RelatedSearches {
		if r.Query != "" {
			related = append(related, r.Query)
		}
	}

	return &domain.SearchResponse{
		Query:           query.Query,
		Organic:         capResults(organic, query.Num),
		RelatedSearches: related,
		Provider:        p.Name(),
	}, nil
}

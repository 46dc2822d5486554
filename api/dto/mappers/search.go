// ABOUTME: Mapping between core domain search types and API DTOs
// ABOUTME: Keeps JSON wire concerns out of the domain layer

package mappers

import (
	"serp-api/api/dto/requests"
	"serp-api/api/dto/responses"
	"serp-api/core/domain"
)

// ToSearchQuery converts an inbound DTO into the domain value object
func ToSearchQuery(req requests.SearchRequest) domain.SearchQuery {
	return domain.SearchQuery{
		Query: req.Q,
		Num:   req.Num,
		GL:    req.GL,
		HL:    req.HL,
		Type:  domain.ResultType(req.Type),
	}
}

// ToSearchResponse converts a domain response into the wire DTO.
// RelatedSearches is never null on the wire, matching the contract that
// it is an array which may be empty.
func ToSearchResponse(resp *domain.SearchResponse) responses.SearchResponse {
	organic := make([]responses.OrganicResult, len(resp.Organic))
	for i, r := range resp.Organic {
		organic[i] = responses.OrganicResult{
			Position: r.Position,
			Title:    r.Title,
			URL:      r.URL,
			Snippet:  r.Snippet,
			Domain:   r.Domain,
		}
	}

	related := resp.RelatedSearches
	if related == nil {
		related = []string{}
	}

	return responses.SearchResponse{
		Query:           resp.Query,
		Organic:         organic,
		RelatedSearches: related,
		Provider:        resp.Provider,
		Cached:          resp.Cached,
		Degraded:        resp.Degraded,
		FailureReasons:  resp.FailureReasons,
	}
}

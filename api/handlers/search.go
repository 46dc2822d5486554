// ABOUTME: HTTP handler for the search endpoint
// ABOUTME: Parses GET query parameters or a POST JSON body and delegates to the resolver

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"serp-api/api/dto/mappers"
	"serp-api/api/dto/requests"
	"serp-api/api/dto/responses"
	"serp-api/core/domain"
)

// errMissingQuery is the wire message for a missing q parameter.
const errMissingQuery = "Query parameter (q) is required"

// SearchResolver is the capability the handler needs from the core layer.
type SearchResolver interface {
	Resolve(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	resolver SearchResolver
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(resolver SearchResolver) *SearchHandler {
	return &SearchHandler{resolver: resolver}
}

// Search serves both GET (query parameters) and POST (JSON body) requests.
// A missing query is the only caller error; everything else resolves to a
// 200, degrading to synthetic results when no backend delivers.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Q) == "" {
		writeError(w, http.StatusBadRequest, errMissingQuery)
		return
	}

	resp, err := h.resolver.Resolve(r.Context(), mappers.ToSearchQuery(req))
	if err != nil {
		// Only validation errors escape the resolver, and the blank
		// query was already rejected above.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToSearchResponse(resp))
}

// parseRequest extracts search parameters from either encoding
func parseRequest(r *http.Request) (requests.SearchRequest, error) {
	if r.Method == http.MethodPost {
		var req requests.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return requests.SearchRequest{}, &badBodyError{}
		}
		return req, nil
	}

	q := r.URL.Query()
	req := requests.SearchRequest{
		Q:    q.Get("q"),
		GL:   q.Get("gl"),
		HL:   q.Get("hl"),
		Type: q.Get("type"),
	}
	if raw := q.Get("num"); raw != "" {
		if num, err := strconv.Atoi(raw); err == nil {
			req.Num = num
		}
	}
	return req, nil
}

type badBodyError struct{}

func (*badBodyError) Error() string { return "Request body must be valid JSON" }

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, responses.ErrorResponse{Error: message})
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"serp-api/api/dto/responses"
	"serp-api/core/domain"
	"serp-api/core/interfaces"
	"serp-api/core/search"
)

// resolver backed by the real orchestrator with no providers: every valid
// query resolves through the mock generator.
func mockOnlyResolver() SearchResolver {
	return search.NewService(interfaces.Dependencies{}, nil, search.Options{})
}

func TestSearch_MissingQueryReturns400(t *testing.T) {
	handler := NewSearchHandler(mockOnlyResolver())

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var body responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Error != "Query parameter (q) is required" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestSearch_BlankQueryReturns400(t *testing.T) {
	handler := NewSearchHandler(mockOnlyResolver())

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=%20%20", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSearch_GetResolvesWithParameters(t *testing.T) {
	handler := NewSearchHandler(mockOnlyResolver())

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=coffee+shops&num=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body responses.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Query != "coffee shops" {
		t.Errorf("query = %q", body.Query)
	}
	if len(body.Organic) != 5 {
		t.Errorf("organic length = %d, want 5", len(body.Organic))
	}
	if body.Provider != "mock" {
		t.Errorf("provider = %q, want mock", body.Provider)
	}
	if body.Organic[0].URL != "https://example.com/coffee-1" {
		t.Errorf("first URL = %q", body.Organic[0].URL)
	}
	if !body.Degraded {
		t.Error("mock-backed response should be degraded")
	}
}

func TestSearch_PostBodyResolves(t *testing.T) {
	handler := NewSearchHandler(mockOnlyResolver())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"q": "tea", "num": 3}`))
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body responses.SearchResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Organic) != 3 {
		t.Errorf("organic length = %d, want 3", len(body.Organic))
	}
}

func TestSearch_PostBadJSONReturns400(t *testing.T) {
	handler := NewSearchHandler(mockOnlyResolver())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSearch_ResponseNeverErrorsOnProviderFailure(t *testing.T) {
	// A resolver whose only provider always fails still yields 200.
	failing := &failingProvider{}
	resolver := search.NewService(interfaces.Dependencies{}, []interfaces.SearchProvider{failing}, search.Options{})
	handler := NewSearchHandler(resolver)

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=coffee", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 despite provider outage", rec.Code)
	}

	var body responses.SearchResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Provider != "mock" {
		t.Errorf("provider = %q, want mock", body.Provider)
	}
	if len(body.FailureReasons) == 0 {
		t.Error("failureReasons should surface the provider outage")
	}
}

type failingProvider struct{}

func (*failingProvider) Name() string { return "failing" }

func (*failingProvider) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResponse, error) {
	return nil, context.DeadlineExceeded
}

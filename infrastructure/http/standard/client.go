// ABOUTME: Standard HTTP client implementation with a bounded per-request timeout
// ABOUTME: Single attempt per call; the provider fallback chain is the resilience mechanism

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"serp-api/core/interfaces"
)

const userAgent = "serp-api/1.0"

// DefaultTimeout bounds each outbound request so a slow provider cannot
// stall the whole fallback chain.
const DefaultTimeout = 8 * time.Second

// StandardHTTPClient implements the HTTPClient interface using the
// standard library. It makes exactly one attempt per call; retrying is
// the caller's concern.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified
// timeout. A non-positive timeout falls back to DefaultTimeout.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST request with a JSON body and optional extra
// headers on top of the defaults.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// ABOUTME: Outbound response DTOs for the search endpoint
// ABOUTME: JSON field names form the external wire contract

package responses

// OrganicResult is one ranked result on the wire
type OrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Snippet  string `json:"snippet"`
	Domain   string `json:"domain"`
}

// SearchResponse is the JSON body returned for every successful search
type SearchResponse struct {
	Query           string          `json:"query"`
	Organic         []OrganicResult `json:"organic"`
	RelatedSearches []string        `json:"relatedSearches"`
	Provider        string          `json:"provider"`
	Cached          bool            `json:"cached"`
	Degraded        bool            `json:"degraded"`
	FailureReasons  []string        `json:"failureReasons,omitempty"`
}

// ErrorResponse is the JSON body for 4xx responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ABOUTME: Inbound request DTO for the search endpoint
// ABOUTME: Parsed from query parameters on GET and a JSON body on POST

package requests

// SearchRequest carries the caller-supplied search parameters. Zero values
// mean "use the default"; validation happens in the core layer.
type SearchRequest struct {
	// Q is the free-text query (required)
	Q string `json:"q"`

	// Num is the requested result count (default 10)
	Num int `json:"num,omitempty"`

	// GL is the geography hint (default "us")
	GL string `json:"gl,omitempty"`

	// HL is the language hint (default "en")
	HL string `json:"hl,omitempty"`

	// Type is "web" or "news" (default "web")
	Type string `json:"type,omitempty"`
}

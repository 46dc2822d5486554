// ABOUTME: Liveness endpoint for load balancers and deployment probes
// ABOUTME: Reports the configured provider chain without touching any backend

package handlers

import (
	"net/http"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	providers []string
}

// NewHealthHandler creates a health handler advertising the configured
// provider chain in priority order.
func NewHealthHandler(providers []string) *HealthHandler {
	return &HealthHandler{providers: providers}
}

// Health responds 200 with the provider chain. It never calls a backend;
// provider outages are not liveness failures here.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	providers := h.providers
	if providers == nil {
		providers = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"providers": providers,
	})
}

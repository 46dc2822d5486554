// ABOUTME: Shared-secret authentication middleware for the search endpoint
// ABOUTME: Enforced only when a secret is configured; otherwise a no-op

package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AuthHeader carries the shared secret on inbound requests.
const AuthHeader = "X-Auth-Secret"

// SharedSecretMiddleware rejects requests whose X-Auth-Secret header does
// not match the configured secret. An empty configured secret disables the
// check entirely.
func SharedSecretMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(AuthHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

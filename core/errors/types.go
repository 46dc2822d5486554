// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ErrNoResults signals that a provider answered successfully but returned
// zero organic results. The orchestrator treats it like any other adapter
// failure and moves on to the next provider.
var ErrNoResults = errors.New("provider returned no results")

// ValidationError represents invalid caller input. It is the only error
// class that ever reaches an external caller.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a transport-level failure from a provider:
// network error, timeout, non-2xx status, or an unparsable body.
type ExternalAPIError struct {
	API        string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsNoResults checks if an error is (or wraps) ErrNoResults
func IsNoResults(err error) bool {
	return errors.Is(err, ErrNoResults)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

package kbase

import "fmt"

// APIError is returned when the server answers with a non-2xx status.
// Use errors.As() to inspect the code.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kbase: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// IsInvalidQuery reports whether the error is a rejected query (empty or
// whitespace-only).
func IsInvalidQuery(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == "invalid_query"
}

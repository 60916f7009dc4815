package domain

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a required prompt answer is empty.
// Callers detect it with errors.Is and abort before any network call.
var ErrMissingInput = errors.New("required input missing")

// ErrNoSelection is returned when the multi-select produced zero entries.
var ErrNoSelection = errors.New("no repositories selected")

// ErrMalformedResponse is returned when an API response body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed API response")

// APIError is returned when the API answers with a non-success status.
// Body carries the raw response text so the API's own explanation reaches
// the user unchanged.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("github API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github API error: status %d: %s", e.StatusCode, e.Body)
}

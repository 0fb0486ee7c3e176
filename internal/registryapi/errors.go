package registryapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches any 404 StatusError and empty lookup results
	ErrNotFound = errors.New("registryapi: company not found")

	// ErrUnexpectedEnvelope is returned when the list endpoint does not
	// answer with {"companies": [...]}
	ErrUnexpectedEnvelope = errors.New("registryapi: unexpected list envelope")

	// ErrMalformedResponse is returned when a 2xx body is not a company record
	ErrMalformedResponse = errors.New("registryapi: malformed response body")
)

// StatusError is a non-2xx answer from the registry API
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("registry api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("registry api request failed with status %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// TransportError wraps failures that happened before a status was received
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("registry api unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

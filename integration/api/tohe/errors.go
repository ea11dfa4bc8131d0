package tohe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates required client configuration is missing.
	ErrInvalidConfig = errors.New("invalid tohe client config")
	// ErrRequestFailed indicates the request never produced an API
	// response (network failure, encoding failure, cancelled context).
	ErrRequestFailed = errors.New("tohe api request failed")
)

// APIError is a non-2xx response from the API, carrying the status code and
// the server's message when one was provided.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tohe api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("tohe api: status %d: %s", e.Status, e.Message)
}

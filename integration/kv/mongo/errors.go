package mongo

import "errors"

var (
	// ErrEmptyConnectionURL is returned when no connection URL is provided.
	ErrEmptyConnectionURL = errors.New("empty mongo connection URL")
	// ErrNotReady is returned when the server does not answer a ping within
	// the connect timeout.
	ErrNotReady = errors.New("mongo did not become ready within the given time period")
)

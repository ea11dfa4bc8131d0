package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	// Absence is a normal state, not a failure.
	ErrNotFound = errors.New("key not found")

	// ErrUnavailable indicates the backing store failed to serve the
	// operation (connection lost, quota exceeded, storage disabled).
	// Backend adapters wrap their driver errors with this sentinel.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the persistence interface for client state.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the value stored under key. Removing an absent key
	// succeeds.
	Remove(ctx context.Context, key string) error
}

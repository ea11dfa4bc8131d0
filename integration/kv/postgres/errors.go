package postgres

import "errors"

var (
	// ErrEmptyConnectionString is returned when no connection string is
	// provided.
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	// ErrNotReady is returned when the database does not answer a ping
	// within the configured attempts.
	ErrNotReady = errors.New("postgres did not become ready within the given time period")
	// ErrMigrationFailed is returned when applying schema migrations fails.
	ErrMigrationFailed = errors.New("failed to apply postgres migrations")
)

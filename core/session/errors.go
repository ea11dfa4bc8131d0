package session

import "errors"

var (
	// ErrSaveToken is returned when persisting the session token fails.
	ErrSaveToken = errors.New("failed to save session token")
	// ErrClearToken is returned when removing the session token fails.
	ErrClearToken = errors.New("failed to clear session token")
)

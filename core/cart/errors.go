package cart

import "errors"

var (
	// ErrSaveCart is returned when persisting the cart fails.
	// The in-memory result of the mutation is discarded; callers should
	// surface the failure rather than assume the change took effect.
	ErrSaveCart = errors.New("failed to save cart")
	// ErrDropLegacyCart is returned when the migrated legacy cart slot
	// cannot be deleted. The namespaced copy is already persisted.
	ErrDropLegacyCart = errors.New("failed to remove legacy cart")
)

package session

import (
	"context"
	"errors"

	"github.com/toheco/tohekit/core/kv"
)

// Store holds, exposes, and interprets the bearer token for the current
// client profile. At most one token is held at a time; setting a new token
// fully replaces the previous one.
type Store struct {
	kv  kv.Store
	cfg Config
}

// New creates a session store over the given storage collaborator.
func New(store kv.Store, opts ...Option) *Store {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{kv: store, cfg: cfg}
}

// SetToken persists token as the current session token, replacing any
// previous value. The token shape is not validated.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.kv.Set(ctx, s.cfg.TokenKey, token); err != nil {
		return errors.Join(ErrSaveToken, err)
	}
	return nil
}

// Token returns the currently persisted token. Absence and storage read
// failures both report ok == false; anonymous is a valid state, not an
// error.
func (s *Store) Token(ctx context.Context) (string, bool) {
	token, err := s.kv.Get(ctx, s.cfg.TokenKey)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Logout removes the persisted token. Idempotent: logging out with no token
// present is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, s.cfg.TokenKey); err != nil {
		return errors.Join(ErrClearToken, err)
	}
	return nil
}

// Claims decodes the persisted token's claims segment. Reports ok == false
// when no token is held or the token cannot be decoded.
func (s *Store) Claims(ctx context.Context) (Claims, bool) {
	token, ok := s.Token(ctx)
	if !ok {
		return Claims{}, false
	}
	return DecodeClaims(token)
}

// Identity resolves the identity claim of the current token. Cart
// namespacing keys off this value; ok == false means anonymous.
func (s *Store) Identity(ctx context.Context) (string, bool) {
	claims, ok := s.Claims(ctx)
	if !ok {
		return "", false
	}
	return claims.Identity()
}

// IsAdmin reports whether the current token carries the admin role.
// Any absence or mismatch yields false. This is a UI hint only.
func (s *Store) IsAdmin(ctx context.Context) bool {
	claims, ok := s.Claims(ctx)
	return ok && claims.IsAdmin()
}

package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toheco/tohekit/core/kv"
	"github.com/toheco/tohekit/core/session"
)

// faultyStore fails every operation, simulating a disabled or broken backend.
type faultyStore struct{}

func (faultyStore) Get(context.Context, string) (string, error) {
	return "", errors.Join(kv.ErrUnavailable, errors.New("backend down"))
}

func (faultyStore) Set(context.Context, string, string) error {
	return errors.Join(kv.ErrUnavailable, errors.New("backend down"))
}

func (faultyStore) Remove(context.Context, string) error {
	return errors.Join(kv.ErrUnavailable, errors.New("backend down"))
}

func TestStore_SetTokenReplaces(t *testing.T) {
	ctx := context.Background()
	store := session.New(kv.NewMemory())

	require.NoError(t, store.SetToken(ctx, "first"))
	require.NoError(t, store.SetToken(ctx, "second"))

	token, ok := store.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "second", token)
}

func TestStore_TokenAbsent(t *testing.T) {
	store := session.New(kv.NewMemory())

	token, ok := store.Token(context.Background())

	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestStore_TokenReadFailureDegradesToAbsent(t *testing.T) {
	store := session.New(faultyStore{})

	_, ok := store.Token(context.Background())

	assert.False(t, ok)
}

func TestStore_LogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	store := session.New(kv.NewMemory())

	require.NoError(t, store.SetToken(ctx, "abc"))
	require.NoError(t, store.Logout(ctx))
	require.NoError(t, store.Logout(ctx), "logout with no token should be a no-op")

	_, ok := store.Token(ctx)
	assert.False(t, ok)
}

func TestStore_WriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := session.New(faultyStore{})

	err := store.SetToken(ctx, "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrSaveToken)
	assert.ErrorIs(t, err, kv.ErrUnavailable)

	err = store.Logout(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrClearToken)
}

func TestStore_ClaimsWithoutToken(t *testing.T) {
	store := session.New(kv.NewMemory())

	_, ok := store.Claims(context.Background())

	assert.False(t, ok)
}

func TestStore_ClaimsMalformedToken(t *testing.T) {
	ctx := context.Background()
	store := session.New(kv.NewMemory())

	require.NoError(t, store.SetToken(ctx, "not-a-real-token"))

	_, ok := store.Claims(ctx)
	assert.False(t, ok)
	assert.False(t, store.IsAdmin(ctx))
}

func TestStore_IsAdmin(t *testing.T) {
	ctx := context.Background()
	store := session.New(kv.NewMemory())

	require.NoError(t, store.SetToken(ctx, tokenWithClaims(t, map[string]any{
		"id":   "u1",
		"role": "admin",
	})))
	assert.True(t, store.IsAdmin(ctx))

	require.NoError(t, store.SetToken(ctx, tokenWithClaims(t, map[string]any{
		"id":   "u1",
		"role": "buyer",
	})))
	assert.False(t, store.IsAdmin(ctx))
}

func TestStore_Identity(t *testing.T) {
	ctx := context.Background()
	store := session.New(kv.NewMemory())

	_, ok := store.Identity(ctx)
	assert.False(t, ok, "anonymous profile has no identity")

	require.NoError(t, store.SetToken(ctx, tokenWithClaims(t, map[string]any{
		"user": map[string]any{"id": 7},
	})))

	id, ok := store.Identity(ctx)
	require.True(t, ok)
	assert.Equal(t, "7", id)
}

func TestStore_CustomTokenKey(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemory()
	store := session.New(backing, session.WithTokenKey("auth_token"))

	require.NoError(t, store.SetToken(ctx, "abc"))

	val, err := backing.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", val)

	_, err = backing.Get(ctx, "token")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

// Package kv defines the persistent key-value surface that the session and
// cart stores write through. It mirrors the contract of the browser's
// origin-scoped local storage: string keys, string values, no TTL.
//
// The interface is deliberately minimal so that backends stay trivial to
// implement. The module ships a thread-safe in-memory implementation for
// tests and local development; production backends live under
// integration/kv (Redis, PostgreSQL, MongoDB).
//
// # Usage
//
//	store := kv.NewMemory()
//
//	if err := store.Set(ctx, "token", "abc"); err != nil {
//		log.Fatal(err)
//	}
//
//	val, err := store.Get(ctx, "token")
//	if errors.Is(err, kv.ErrNotFound) {
//		// key absent - a normal, expected state
//	}
//
// # Error Contract
//
// Get returns ErrNotFound for absent keys. All other failures, on any
// operation, wrap ErrUnavailable so callers can distinguish "no value" from
// "backend down" with errors.Is. Remove on a missing key is a no-op, not an
// error.
package kv

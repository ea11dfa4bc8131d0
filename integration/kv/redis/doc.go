// Package redis provides a Redis-backed implementation of the kv.Store
// collaborator, for deployments that mirror client state server-side.
//
// Connect validates the connection URL, dials with retry, and verifies
// connectivity with a ping before returning the client:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := redis.New(client)
//
//	carts := cart.New(store, sessions)
//
// Keys are stored verbatim (optionally under a configured prefix) with no
// TTL, matching the indefinite retention of the browser's local storage.
package redis

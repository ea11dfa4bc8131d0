// Package cart maintains the per-identity shopping cart: an ordered sequence
// of line items, unique by product identity, persisted through the kv storage
// collaborator on every mutation.
//
// Carts are namespaced by the identity resolved from the current session
// token; anonymous profiles share a fixed guest namespace. Each namespace is
// an independent cart. The first read under a non-guest namespace that finds
// nothing falls back to the legacy unnamespaced cart key and migrates it:
// the legacy items are copied into the namespaced slot and the legacy key is
// deleted. Migration runs at most once, because it consumes the legacy slot.
//
// # Usage
//
//	store := kv.NewMemory()
//	sessions := session.New(store)
//	carts := cart.New(store, sessions)
//
//	items, err := carts.Add(ctx, cart.Product{ID: "p1", Title: "Botol", Price: 5000}, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Invariants
//
// A line item's quantity is always >= 1 while it exists; any operation that
// would drive it to zero or below removes the item instead. Product identity
// is unique within one cart: adding a product already present merges into
// the existing line's quantity.
//
// # Failure Semantics
//
// Corrupt or unreadable stored carts degrade to an empty cart. Write
// failures propagate to the caller; a mutation is never silently dropped.
package cart

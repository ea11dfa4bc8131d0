package cart

import (
	"context"
	"errors"

	"github.com/toheco/tohekit/core/kv"
)

// IdentityResolver reports the identity owning the current cart namespace.
// session.Store satisfies this; ok == false selects the guest namespace.
type IdentityResolver interface {
	Identity(ctx context.Context) (string, bool)
}

// Store maintains the ordered, deduplicated line items for the current
// identity namespace. Every mutation persists before returning.
type Store struct {
	kv       kv.Store
	identity IdentityResolver
	cfg      Config
}

// New creates a cart store over the given storage collaborator. A nil
// resolver pins the store to the guest namespace.
func New(store kv.Store, identity IdentityResolver, opts ...Option) *Store {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{kv: store, identity: identity, cfg: cfg}
}

// key resolves the storage key for the current namespace.
func (s *Store) key(ctx context.Context) string {
	if s.identity == nil {
		return s.cfg.GuestKey
	}
	id, ok := s.identity.Identity(ctx)
	if !ok || id == "" {
		return s.cfg.GuestKey
	}
	return s.cfg.KeyPrefix + id
}

// Items loads the current namespace's cart. A slot that was never written,
// or whose payload is corrupt, reads as an empty cart. The first read of an
// empty non-guest namespace consumes the legacy unnamespaced cart: its items
// are copied into the namespaced slot, the legacy slot is deleted, and the
// migrated items are returned. The returned error is non-nil only when a
// migration write fails.
func (s *Store) Items(ctx context.Context) ([]LineItem, error) {
	key := s.key(ctx)

	raw, err := s.kv.Get(ctx, key)
	if err == nil {
		return decodeItems(raw), nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		// Read failure degrades to an empty cart; migration is not
		// attempted because the slot's true state is unknown.
		return []LineItem{}, nil
	}

	if key == s.cfg.GuestKey {
		return []LineItem{}, nil
	}
	return s.migrateLegacy(ctx, key)
}

// migrateLegacy performs the one-shot, destructive legacy cart migration
// into the given namespaced key.
func (s *Store) migrateLegacy(ctx context.Context, key string) ([]LineItem, error) {
	raw, err := s.kv.Get(ctx, s.cfg.LegacyKey)
	if err != nil {
		return []LineItem{}, nil
	}

	items := decodeItems(raw)
	if len(items) == 0 {
		return []LineItem{}, nil
	}

	if _, err := s.persist(ctx, key, items); err != nil {
		return nil, err
	}
	if err := s.kv.Remove(ctx, s.cfg.LegacyKey); err != nil {
		return nil, errors.Join(ErrDropLegacyCart, err)
	}
	return items, nil
}

// Add merges qty units of product into the cart. Quantities below 1 coerce
// to 1. A product already present has its quantity incremented, all other
// fields unchanged; otherwise a new line item is appended. Returns the full
// updated cart.
func (s *Store) Add(ctx context.Context, product Product, qty int) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	if qty < 1 {
		qty = 1
	}

	merged := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			ID:       product.ID,
			Title:    product.Title,
			Price:    product.Price,
			ImageURL: product.ImageURL,
			Quantity: qty,
		})
	}

	return s.persist(ctx, s.key(ctx), items)
}

// SetQuantity sets the matching item's quantity to max(1, qty); this path
// never removes an item. Unknown ids leave the cart unchanged. Returns the
// full cart.
func (s *Store) SetQuantity(ctx context.Context, id ID, qty int) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	if qty < 1 {
		qty = 1
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = qty
		}
	}

	return s.persist(ctx, s.key(ctx), items)
}

// AdjustQuantity applies a signed delta to the matching item's quantity.
// A resulting quantity of zero or below removes the line item; a stored
// non-positive quantity is never observable. Returns the resulting cart,
// which may be shorter than the input.
func (s *Store) AdjustQuantity(ctx context.Context, id ID, delta int) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			updated = append(updated, item)
			continue
		}
		if newQty := item.Quantity + delta; newQty > 0 {
			item.Quantity = newQty
			updated = append(updated, item)
		}
	}

	return s.persist(ctx, s.key(ctx), updated)
}

// Remove filters out the line item matching id. Removing an id not present
// returns the cart unchanged.
func (s *Store) Remove(ctx context.Context, id ID) ([]LineItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			updated = append(updated, item)
		}
	}

	return s.persist(ctx, s.key(ctx), updated)
}

// persist writes items under key and returns them. Write failures propagate;
// the mutation must not be silently lost.
func (s *Store) persist(ctx context.Context, key string, items []LineItem) ([]LineItem, error) {
	raw, err := encodeItems(items)
	if err != nil {
		return nil, errors.Join(ErrSaveCart, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return nil, errors.Join(ErrSaveCart, err)
	}
	return items, nil
}

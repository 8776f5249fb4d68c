package cart

import (
	"context"
	"errors"

	"github.com/jacmel/storefront-backend/pkg/storage"
)

// Repository stores carts as blobs keyed by session.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Load returns the session cart; a session without one has an empty cart.
func (r *Repository) Load(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := r.store.Get(ctx, storage.CartKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return Empty(), nil
	}
	if err != nil {
		return Cart{}, err
	}
	return Unmarshal([]byte(raw))
}

func (r *Repository) Save(ctx context.Context, sessionID string, c Cart) error {
	payload, err := Marshal(c)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.CartKey(sessionID), string(payload))
}

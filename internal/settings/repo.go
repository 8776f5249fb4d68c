package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jacmel/storefront-backend/pkg/storage"
)

type Repository struct {
	store    storage.Store
	defaults Settings
}

func NewRepository(store storage.Store, defaults Settings) *Repository {
	return &Repository{store: store, defaults: defaults}
}

// Load returns the saved settings or the defaults when none were saved.
func (r *Repository) Load(ctx context.Context) (Settings, error) {
	raw, err := r.store.Get(ctx, storage.KeySettings)
	if errors.Is(err, storage.ErrNotFound) {
		return r.defaults, nil
	}
	if err != nil {
		return Settings{}, err
	}
	var out Settings
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return out, nil
}

func (r *Repository) Save(ctx context.Context, value Settings) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return r.store.Set(ctx, storage.KeySettings, string(payload))
}

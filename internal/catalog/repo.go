package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jacmel/storefront-backend/pkg/storage"
)

// Repository persists the menu as a single blob.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Load returns the saved menu, or the default menu when none was saved.
func (r *Repository) Load(ctx context.Context) ([]MenuEntry, error) {
	raw, err := r.store.Get(ctx, storage.KeyMenu)
	if errors.Is(err, storage.ErrNotFound) {
		return DefaultMenu(), nil
	}
	if err != nil {
		return nil, err
	}
	var entries []MenuEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if entries == nil {
		entries = []MenuEntry{}
	}
	return entries, nil
}

func (r *Repository) Save(ctx context.Context, entries []MenuEntry) error {
	if entries == nil {
		entries = []MenuEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	return r.store.Set(ctx, storage.KeyMenu, string(payload))
}

package cart

import (
	"context"

	"github.com/jacmel/storefront-backend/internal/catalog"
)

// MenuReader is the catalog surface the cart service resolves entries through.
type MenuReader interface {
	Get(ctx context.Context, id string) (catalog.MenuEntry, error)
	Options() catalog.OptionCatalog
}

// CartRepository loads and stores one cart per session.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
}

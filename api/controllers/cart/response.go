package cart

import (
	"github.com/jacmel/storefront-backend/internal/cart"
	"github.com/shopspring/decimal"
)

// CartView is the cart as the storefront renders it, with the basket badge
// count and subtotal alongside the lines.
type CartView struct {
	Lines     []cart.Line     `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func NewCartView(c cart.Cart) CartView {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return CartView{
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
	}
}

package checkout

import (
	"github.com/jacmel/storefront-backend/internal/cart"
	"github.com/shopspring/decimal"
)

// OrderTotals is derived from a cart and a delivery choice, never stored.
type OrderTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeTotals charges the delivery fee only for deliveries.
func ComputeTotals(c cart.Cart, selection DeliverySelection, deliveryFee decimal.Decimal) OrderTotals {
	subtotal := c.Subtotal()
	fee := decimal.Zero
	if selection.IsDelivery() {
		fee = deliveryFee
	}
	return OrderTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}

package cart

import (
	"strings"

	"github.com/jacmel/storefront-backend/internal/cart"
)

// AddItemsRequest adds a dish with its sides and any drinks picked with it.
type AddItemsRequest struct {
	EntryID       string   `json:"entry_id" validate:"omitempty,max=64"`
	SideOptionIDs []string `json:"side_option_ids" validate:"max=7,dive,max=64"`
	DrinkIDs      []string `json:"drink_ids" validate:"max=20,dive,max=64"`
}

// UpdateLineRequest shifts a line's quantity.
type UpdateLineRequest struct {
	Delta int `json:"delta" validate:"required,min=-99,max=99"`
}

func toAddItemsInput(payload AddItemsRequest) cart.AddItemsInput {
	drinks := make([]string, 0, len(payload.DrinkIDs))
	for _, id := range payload.DrinkIDs {
		if clean := strings.TrimSpace(id); clean != "" {
			drinks = append(drinks, clean)
		}
	}
	return cart.AddItemsInput{
		EntryID:       strings.TrimSpace(payload.EntryID),
		SideOptionIDs: payload.SideOptionIDs,
		DrinkIDs:      drinks,
	}
}

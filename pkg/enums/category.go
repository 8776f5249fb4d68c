package enums

import (
	"fmt"
	"strings"
)

// MenuCategory is one of the fixed menu sections, listed in display order.
type MenuCategory string

const (
	MenuCategoryStarters MenuCategory = "entrees"
	MenuCategoryMains    MenuCategory = "plats_principaux"
	MenuCategoryDesserts MenuCategory = "desserts"
	MenuCategoryDrinks   MenuCategory = "boissons"
)

var validMenuCategories = []MenuCategory{
	MenuCategoryStarters,
	MenuCategoryMains,
	MenuCategoryDesserts,
	MenuCategoryDrinks,
}

var menuCategoryLabels = map[MenuCategory]string{
	MenuCategoryStarters: "Entrées",
	MenuCategoryMains:    "Plats Principaux",
	MenuCategoryDesserts: "Desserts",
	MenuCategoryDrinks:   "Boissons",
}

// MenuCategories returns the categories in display order.
func MenuCategories() []MenuCategory {
	out := make([]MenuCategory, len(validMenuCategories))
	copy(out, validMenuCategories)
	return out
}

// String implements fmt.Stringer.
func (c MenuCategory) String() string {
	return string(c)
}

// Label returns the customer facing name.
func (c MenuCategory) Label() string {
	if label, ok := menuCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsValid reports whether the value is a known MenuCategory.
func (c MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseMenuCategory accepts either the code or the display label.
func ParseMenuCategory(value string) (MenuCategory, error) {
	clean := strings.TrimSpace(value)
	for _, candidate := range validMenuCategories {
		if string(candidate) == clean || strings.EqualFold(menuCategoryLabels[candidate], clean) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}

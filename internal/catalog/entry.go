package catalog

import (
	"github.com/jacmel/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// MenuEntry is one purchasable dish or drink.
type MenuEntry struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Ingredients []string           `json:"ingredients,omitempty"`
	Price       decimal.Decimal    `json:"price"`
	Category    enums.MenuCategory `json:"category"`
	Available   bool               `json:"available"`
	Featured    bool               `json:"featured,omitempty"`
	Image       string             `json:"image,omitempty"`
}

// Clone returns a copy that shares no slices with the receiver.
func (e MenuEntry) Clone() MenuEntry {
	out := e
	if e.Ingredients != nil {
		out.Ingredients = append([]string(nil), e.Ingredients...)
	}
	return out
}

// AcceptsSideOptions reports whether side options apply to the entry.
func (e MenuEntry) AcceptsSideOptions() bool {
	return e.Category == enums.MenuCategoryMains
}

// Find returns the entry with the given id.
func Find(entries []MenuEntry, id string) (MenuEntry, bool) {
	for _, entry := range entries {
		if entry.ID == id {
			return entry.Clone(), true
		}
	}
	return MenuEntry{}, false
}

// Available filters out entries that cannot be ordered, keeping catalog order.
func Available(entries []MenuEntry) []MenuEntry {
	out := make([]MenuEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Available {
			out = append(out, entry.Clone())
		}
	}
	return out
}

// Drinks lists the available drinks offered as add-ons.
func Drinks(entries []MenuEntry) []MenuEntry {
	out := make([]MenuEntry, 0)
	for _, entry := range entries {
		if entry.Available && entry.Category == enums.MenuCategoryDrinks {
			out = append(out, entry.Clone())
		}
	}
	return out
}

// Section is one menu category with its entries.
type Section struct {
	Category enums.MenuCategory `json:"category"`
	Label    string             `json:"label"`
	Entries  []MenuEntry        `json:"entries"`
}

// GroupByCategory splits entries into sections in display order. Empty
// categories are omitted.
func GroupByCategory(entries []MenuEntry) []Section {
	sections := make([]Section, 0, len(enums.MenuCategories()))
	for _, category := range enums.MenuCategories() {
		section := Section{Category: category, Label: category.Label()}
		for _, entry := range entries {
			if entry.Category == category {
				section.Entries = append(section.Entries, entry.Clone())
			}
		}
		if len(section.Entries) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}

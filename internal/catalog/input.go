package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Ingredients decodes either a JSON list or a comma separated string.
type Ingredients []string

func (i *Ingredients) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*i = cleanIngredients(list)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ingredients must be a list or a comma separated string")
	}
	*i = ParseIngredients(raw)
	return nil
}

// ParseIngredients splits a comma separated string, dropping blanks.
func ParseIngredients(raw string) []string {
	return cleanIngredients(strings.Split(raw, ","))
}

func cleanIngredients(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if clean := strings.TrimSpace(value); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// EntryInput is the admin payload for creating or replacing a menu entry.
type EntryInput struct {
	ID          string          `json:"id" validate:"omitempty,max=64"`
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=1000"`
	Ingredients Ingredients     `json:"ingredients"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Available   *bool           `json:"available"`
	Featured    bool            `json:"featured"`
	Image       string          `json:"image"`
}

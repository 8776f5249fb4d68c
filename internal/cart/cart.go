package cart

import (
	"encoding/json"
	"fmt"

	"github.com/jacmel/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Cart is an ordered list of lines. No two lines are ever mergeable.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Empty returns a cart with no lines.
func Empty() Cart {
	return Cart{Lines: []Line{}}
}

func (c Cart) clone() Cart {
	out := Cart{Lines: make([]Line, 0, len(c.Lines)+1)}
	for _, line := range c.Lines {
		out.Lines = append(out.Lines, line.clone())
	}
	return out
}

func (c Cart) indexOf(lineID string) int {
	for i, line := range c.Lines {
		if line.LineID == lineID {
			return i
		}
	}
	return -1
}

func (c Cart) indexOfMergeable(entryID string, labels []string) int {
	for i, line := range c.Lines {
		if line.Mergeable(entryID, labels) {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// ItemCount sums quantities across lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Subtotal sums unit price times quantity across lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Find returns the line with the given id.
func (c Cart) Find(lineID string) (Line, bool) {
	if idx := c.indexOf(lineID); idx >= 0 {
		return c.Lines[idx].clone(), true
	}
	return Line{}, false
}

// AddMainItem adds one unit of a dish with its chosen sides. Side ids only
// apply to main dishes. An existing line with the same entry and option set
// gets its quantity bumped and keeps the unit price it was created with.
func AddMainItem(c Cart, entry catalog.MenuEntry, optionIDs []string, options catalog.OptionCatalog) Cart {
	var labels []string
	surcharge := decimal.Zero
	if entry.AcceptsSideOptions() {
		labels, surcharge = options.Resolve(optionIDs)
	}

	out := c.clone()
	if idx := out.indexOfMergeable(entry.ID, labels); idx >= 0 {
		out.Lines[idx].Quantity++
		return out
	}

	line := newLine(entry, labels)
	line.Price = entry.Price.Add(surcharge)
	out.Lines = append(out.Lines, line)
	return out
}

// AddDrinkItems adds one unit of each drink. Drinks never carry options, so
// each one merges only with an option-free line of the same entry.
func AddDrinkItems(c Cart, drinks []catalog.MenuEntry) Cart {
	out := c.clone()
	for _, drink := range drinks {
		if idx := out.indexOfMergeable(drink.ID, nil); idx >= 0 {
			out.Lines[idx].Quantity++
			continue
		}
		out.Lines = append(out.Lines, newLine(drink, nil))
	}
	return out
}

// UpdateQuantity shifts a line's quantity by delta. A result below 1 leaves
// the line unchanged; removal goes through RemoveLine.
func UpdateQuantity(c Cart, lineID string, delta int) Cart {
	out := c.clone()
	idx := out.indexOf(lineID)
	if idx < 0 {
		return out
	}
	if next := out.Lines[idx].Quantity + delta; next > 0 {
		out.Lines[idx].Quantity = next
	}
	return out
}

// RemoveLine drops the line with the given id, if present.
func RemoveLine(c Cart, lineID string) Cart {
	out := Cart{Lines: make([]Line, 0, len(c.Lines))}
	for _, line := range c.Lines {
		if line.LineID != lineID {
			out.Lines = append(out.Lines, line.clone())
		}
	}
	return out
}

func Clear() Cart {
	return Empty()
}

// Marshal encodes the cart for the persistence shim.
func Marshal(c Cart) ([]byte, error) {
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	return json.Marshal(c)
}

// Unmarshal decodes a stored cart. Lines saved without an id get one derived
// from their entry and options.
func Unmarshal(data []byte) (Cart, error) {
	var out Cart
	if err := json.Unmarshal(data, &out); err != nil {
		return Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	if out.Lines == nil {
		out.Lines = []Line{}
	}
	for i := range out.Lines {
		if out.Lines[i].LineID == "" {
			out.Lines[i].LineID = LineID(out.Lines[i].ID, out.Lines[i].SelectedOptions)
		}
	}
	return out, nil
}

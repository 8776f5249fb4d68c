package cart

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jacmel/storefront-backend/internal/catalog"
)

var lineNamespace = uuid.MustParse("6f1c2a8e-3b7d-4c59-9e21-5a0d8f4b7c13")

// Line is one mergeable unit of purchase. Price is the unit price with side
// surcharges already applied, frozen when the line was created.
type Line struct {
	catalog.MenuEntry
	LineID          string   `json:"line_id"`
	Quantity        int      `json:"quantity"`
	SelectedOptions []string `json:"selected_options,omitempty"`
}

// NormalizeOptions returns a sorted copy of the labels. Every option-set
// comparison and line id goes through it.
func NormalizeOptions(labels []string) []string {
	out := append([]string(nil), labels...)
	sort.Strings(out)
	return out
}

// OptionsEqual compares two option sets ignoring order.
func OptionsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	na, nb := NormalizeOptions(a), NormalizeOptions(b)
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}

// LineID derives the identifier shared by every mergeable line.
func LineID(entryID string, labels []string) string {
	parts := append([]string{entryID}, NormalizeOptions(labels)...)
	return uuid.NewSHA1(lineNamespace, []byte(strings.Join(parts, "\x1f"))).String()
}

// Mergeable reports whether the line has the given entry id and option set.
func (l Line) Mergeable(entryID string, labels []string) bool {
	return l.ID == entryID && OptionsEqual(l.SelectedOptions, labels)
}

func newLine(entry catalog.MenuEntry, labels []string) Line {
	entry = entry.Clone()
	if len(entry.Ingredients) == 0 {
		entry.Ingredients = nil
	}
	if len(labels) == 0 {
		labels = nil
	} else {
		labels = append([]string(nil), labels...)
	}
	return Line{
		MenuEntry:       entry,
		LineID:          LineID(entry.ID, labels),
		Quantity:        1,
		SelectedOptions: labels,
	}
}

func (l Line) clone() Line {
	out := l
	out.MenuEntry = l.MenuEntry.Clone()
	if l.SelectedOptions != nil {
		out.SelectedOptions = append([]string(nil), l.SelectedOptions...)
	}
	return out
}

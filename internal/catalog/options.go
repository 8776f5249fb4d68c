package catalog

import "github.com/shopspring/decimal"

// MaxSideOptions caps how many sides a single dish can carry.
const MaxSideOptions = 4

// SideOption is a selectable side dish with its surcharge.
type SideOption struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

// OptionCatalog is the ordered, fixed list of side options.
type OptionCatalog []SideOption

// DefaultSideOptions returns the house side dishes.
func DefaultSideOptions() OptionCatalog {
	return OptionCatalog{
		{ID: "riz_colle", Label: "Riz Collé (Pois Rouges)", Surcharge: decimal.NewFromInt(150)},
		{ID: "riz_blanc", Label: "Riz Blanc & Sauce Pois", Surcharge: decimal.NewFromInt(150)},
		{ID: "bananes", Label: "Bananes Pesées", Surcharge: decimal.NewFromInt(150)},
		{ID: "pikliz", Label: "Pikliz Extra", Surcharge: decimal.NewFromInt(50)},
		{ID: "macaroni", Label: "Macaroni au Gratin", Surcharge: decimal.NewFromInt(250)},
		{ID: "pommes", Label: "Pommes de Terre", Surcharge: decimal.NewFromInt(150)},
		{ID: "frites", Label: "Frites", Surcharge: decimal.NewFromInt(150)},
	}
}

// Lookup returns the option with the given id.
func (c OptionCatalog) Lookup(id string) (SideOption, bool) {
	for _, option := range c {
		if option.ID == id {
			return option, true
		}
	}
	return SideOption{}, false
}

// Resolve maps selected ids to labels and a surcharge total. Labels come back
// in catalog order whatever the order of ids. Unknown ids are skipped,
// duplicates count once and only the first MaxSideOptions matches are kept.
func (c OptionCatalog) Resolve(ids []string) ([]string, decimal.Decimal) {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	labels := make([]string, 0, len(selected))
	surcharge := decimal.Zero
	for _, option := range c {
		if len(labels) == MaxSideOptions {
			break
		}
		if _, ok := selected[option.ID]; !ok {
			continue
		}
		labels = append(labels, option.Label)
		surcharge = surcharge.Add(option.Surcharge)
	}
	return labels, surcharge
}

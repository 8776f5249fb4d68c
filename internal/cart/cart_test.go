package cart

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/jacmel/storefront-backend/internal/catalog"
	"github.com/jacmel/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func griot() catalog.MenuEntry {
	return catalog.MenuEntry{
		ID:        "3",
		Name:      "Griot de Porc",
		Price:     decimal.NewFromInt(750),
		Category:  enums.MenuCategoryMains,
		Available: true,
	}
}

func corossol() catalog.MenuEntry {
	return catalog.MenuEntry{
		ID:        "6",
		Name:      "Jus de Corossol",
		Price:     decimal.NewFromInt(150),
		Category:  enums.MenuCategoryDrinks,
		Available: true,
	}
}

func prestige() catalog.MenuEntry {
	return catalog.MenuEntry{
		ID:        "7",
		Name:      "Prestige",
		Price:     decimal.NewFromInt(125),
		Category:  enums.MenuCategoryDrinks,
		Available: true,
	}
}

func TestAddMainItemMergesRegardlessOfOptionOrder(t *testing.T) {
	options := catalog.DefaultSideOptions()

	c := AddMainItem(Empty(), griot(), []string{"riz_colle", "pikliz"}, options)
	if len(c.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(c.Lines))
	}
	if !c.Lines[0].Price.Equal(decimal.NewFromInt(950)) || c.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected first line %+v", c.Lines[0])
	}

	c = AddMainItem(c, griot(), []string{"pikliz", "riz_colle"}, options)
	if len(c.Lines) != 1 {
		t.Fatalf("expected merge into one line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Lines[0].Quantity)
	}
	if !c.Lines[0].Price.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("unit price changed on merge: %s", c.Lines[0].Price)
	}
}

func TestAddMainItemRepeatedCallsYieldOneLine(t *testing.T) {
	options := catalog.DefaultSideOptions()
	sets := [][]string{
		{"bananes", "frites", "pikliz"},
		{"pikliz", "bananes", "frites"},
		{"frites", "pikliz", "bananes"},
	}
	c := Empty()
	for i := 0; i < 9; i++ {
		c = AddMainItem(c, griot(), sets[i%len(sets)], options)
	}
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 9 {
		t.Fatalf("expected one line with quantity 9, got %+v", c.Lines)
	}
}

func TestAddMainItemDistinctOptionSetsMakeDistinctLines(t *testing.T) {
	options := catalog.DefaultSideOptions()
	c := Empty()
	c = AddMainItem(c, griot(), nil, options)
	c = AddMainItem(c, griot(), []string{"frites"}, options)
	c = AddMainItem(c, griot(), []string{"frites", "pikliz"}, options)
	c = AddMainItem(c, griot(), []string{"frites"}, options)

	if len(c.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(c.Lines))
	}
	if c.Lines[1].Quantity != 2 {
		t.Fatalf("expected frites line quantity 2, got %d", c.Lines[1].Quantity)
	}
	seen := map[string]bool{}
	for _, line := range c.Lines {
		if seen[line.LineID] {
			t.Fatalf("duplicate line id %s", line.LineID)
		}
		seen[line.LineID] = true
	}
}

func TestAddMainItemIgnoresSidesOutsideMains(t *testing.T) {
	dessert := catalog.MenuEntry{ID: "5", Name: "Douce Macos", Price: decimal.NewFromInt(200), Category: enums.MenuCategoryDesserts}
	c := AddMainItem(Empty(), dessert, []string{"frites"}, catalog.DefaultSideOptions())
	if len(c.Lines[0].SelectedOptions) != 0 {
		t.Fatalf("expected no options on dessert, got %v", c.Lines[0].SelectedOptions)
	}
	if !c.Lines[0].Price.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected base price, got %s", c.Lines[0].Price)
	}
}

func TestAddMainItemDoesNotMutateInput(t *testing.T) {
	options := catalog.DefaultSideOptions()
	before := AddMainItem(Empty(), griot(), []string{"frites"}, options)
	after := AddMainItem(before, griot(), []string{"frites"}, options)
	if before.Lines[0].Quantity != 1 {
		t.Fatalf("input cart mutated: quantity %d", before.Lines[0].Quantity)
	}
	if after.Lines[0].Quantity != 2 {
		t.Fatalf("expected returned cart quantity 2, got %d", after.Lines[0].Quantity)
	}
}

func TestAddDrinkItems(t *testing.T) {
	options := catalog.DefaultSideOptions()
	c := AddMainItem(Empty(), griot(), []string{"frites"}, options)
	c = AddDrinkItems(c, []catalog.MenuEntry{corossol(), prestige()})
	c = AddDrinkItems(c, []catalog.MenuEntry{corossol()})

	if len(c.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(c.Lines))
	}
	if c.Lines[1].ID != "6" || c.Lines[1].Quantity != 2 {
		t.Fatalf("expected corossol quantity 2, got %+v", c.Lines[1])
	}
	if c.Lines[2].ID != "7" || c.Lines[2].Quantity != 1 {
		t.Fatalf("expected prestige quantity 1, got %+v", c.Lines[2])
	}
	if c.Lines[1].SelectedOptions != nil {
		t.Fatalf("drinks must not carry options")
	}
}

func TestAddDrinkItemsSameDrinkTwiceInOneCall(t *testing.T) {
	c := AddDrinkItems(Empty(), []catalog.MenuEntry{prestige(), prestige()})
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 2 {
		t.Fatalf("expected one prestige line with quantity 2, got %+v", c.Lines)
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	c := AddDrinkItems(Empty(), []catalog.MenuEntry{prestige()})
	id := c.Lines[0].LineID

	c = UpdateQuantity(c, id, 3)
	if c.Lines[0].Quantity != 4 {
		t.Fatalf("expected 4, got %d", c.Lines[0].Quantity)
	}
	for i := 0; i < 10; i++ {
		c = UpdateQuantity(c, id, -1)
	}
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
		t.Fatalf("expected line kept at quantity 1, got %+v", c.Lines)
	}
	c = UpdateQuantity(c, id, -5)
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("large negative delta must be a no-op, got %d", c.Lines[0].Quantity)
	}
}

func TestUnknownLineIDsAreNoOps(t *testing.T) {
	c := AddDrinkItems(Empty(), []catalog.MenuEntry{prestige()})
	id := c.Lines[0].LineID

	c = RemoveLine(c, id)
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart after removal")
	}
	c = UpdateQuantity(c, id, 1)
	c = RemoveLine(c, id)
	if !c.IsEmpty() {
		t.Fatalf("operations on removed id must be no-ops, got %+v", c.Lines)
	}
	if _, ok := c.Find(id); ok {
		t.Fatalf("removed line still found")
	}
}

func TestClearAndItemCount(t *testing.T) {
	c := AddDrinkItems(Empty(), []catalog.MenuEntry{prestige(), corossol(), prestige()})
	if c.ItemCount() != 3 {
		t.Fatalf("expected 3 items, got %d", c.ItemCount())
	}
	if cleared := Clear(); !cleared.IsEmpty() || cleared.ItemCount() != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestSubtotalIsOrderIndependent(t *testing.T) {
	options := catalog.DefaultSideOptions()
	c := AddMainItem(Empty(), griot(), []string{"riz_colle", "pikliz"}, options)
	c = AddMainItem(c, griot(), []string{"macaroni"}, options)
	c = AddDrinkItems(c, []catalog.MenuEntry{prestige(), corossol(), prestige()})
	want := c.Subtotal()

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := c.clone()
		r.Shuffle(len(shuffled.Lines), func(a, b int) {
			shuffled.Lines[a], shuffled.Lines[b] = shuffled.Lines[b], shuffled.Lines[a]
		})
		if got := shuffled.Subtotal(); !got.Equal(want) {
			t.Fatalf("subtotal changed after shuffle: %s vs %s", got, want)
		}
	}
	// 950 + 1000 + 125*2 + 150
	if !want.Equal(decimal.NewFromInt(2350)) {
		t.Fatalf("expected 2350, got %s", want)
	}
}

func TestLineIDIsCanonical(t *testing.T) {
	a := LineID("3", []string{"Pikliz Extra", "Frites"})
	b := LineID("3", []string{"Frites", "Pikliz Extra"})
	if a != b {
		t.Fatalf("line ids differ for the same option set")
	}
	if a == LineID("4", []string{"Frites", "Pikliz Extra"}) {
		t.Fatalf("line ids must differ across entries")
	}
	if LineID("3", nil) != LineID("3", []string{}) {
		t.Fatalf("nil and empty option sets must share an id")
	}
}

func TestOptionsEqual(t *testing.T) {
	if !OptionsEqual([]string{"b", "a"}, []string{"a", "b"}) {
		t.Fatal("expected equal sets")
	}
	if OptionsEqual([]string{"a"}, []string{"a", "b"}) {
		t.Fatal("expected different sets")
	}
	input := []string{"b", "a"}
	NormalizeOptions(input)
	if input[0] != "b" {
		t.Fatal("NormalizeOptions must not sort in place")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	options := catalog.DefaultSideOptions()
	entry := griot()
	entry.Ingredients = []string{"Épaule de porc", "Ail"}
	entry.Featured = true
	entry.Image = "https://picsum.photos/400/300?random=3"

	c := AddMainItem(Empty(), entry, []string{"pikliz", "riz_colle"}, options)
	c = AddDrinkItems(c, []catalog.MenuEntry{prestige()})
	c = UpdateQuantity(c, c.Lines[1].LineID, 2)

	encoded, err := Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := Unmarshal(encoded)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Lines) != len(c.Lines) {
		t.Fatalf("line count changed: %d vs %d", len(decoded.Lines), len(c.Lines))
	}
	for i, want := range c.Lines {
		got := decoded.Lines[i]
		if got.LineID != want.LineID || got.ID != want.ID || got.Name != want.Name || got.Quantity != want.Quantity {
			t.Fatalf("line %d changed: %+v vs %+v", i, got, want)
		}
		if !got.Price.Equal(want.Price) || got.Category != want.Category || got.Featured != want.Featured || got.Image != want.Image {
			t.Fatalf("line %d entry fields changed: %+v vs %+v", i, got, want)
		}
		if len(got.SelectedOptions) != len(want.SelectedOptions) {
			t.Fatalf("line %d options changed: %v vs %v", i, got.SelectedOptions, want.SelectedOptions)
		}
		for j := range want.SelectedOptions {
			if got.SelectedOptions[j] != want.SelectedOptions[j] {
				t.Fatalf("line %d option order changed: %v vs %v", i, got.SelectedOptions, want.SelectedOptions)
			}
		}
		if len(got.Ingredients) != len(want.Ingredients) {
			t.Fatalf("line %d ingredients changed", i)
		}
	}

	again, err := Marshal(decoded)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(encoded, again) {
		t.Fatalf("round trip not stable:\n%s\n%s", encoded, again)
	}
}

func TestUnmarshalFillsMissingLineIDs(t *testing.T) {
	raw := []byte(`{"lines":[{"id":"7","name":"Prestige","price":"125","category":"boissons","available":true,"quantity":2}]}`)
	c, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Lines[0].LineID != LineID("7", nil) {
		t.Fatalf("expected derived line id, got %q", c.Lines[0].LineID)
	}
	if _, err := Unmarshal([]byte(`{"lines":`)); err == nil {
		t.Fatal("expected decode error")
	}
}

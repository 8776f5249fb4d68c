package enums

import "testing"

func TestParseMenuCategory(t *testing.T) {
	cases := map[string]MenuCategory{
		"entrees":          MenuCategoryStarters,
		"Plats Principaux": MenuCategoryMains,
		" boissons ":       MenuCategoryDrinks,
		"desserts":         MenuCategoryDesserts,
	}
	for input, want := range cases {
		got, err := ParseMenuCategory(input)
		if err != nil {
			t.Fatalf("ParseMenuCategory(%q) unexpected error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseMenuCategory(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := ParseMenuCategory("pizza"); err == nil {
		t.Fatal("expected unknown category to fail")
	}
}

func TestMenuCategoriesOrder(t *testing.T) {
	got := MenuCategories()
	if len(got) != 4 || got[0] != MenuCategoryStarters || got[3] != MenuCategoryDrinks {
		t.Fatalf("unexpected category order %v", got)
	}
	got[0] = MenuCategoryDrinks
	if MenuCategories()[0] != MenuCategoryStarters {
		t.Fatal("MenuCategories must return a copy")
	}
	if MenuCategoryMains.Label() != "Plats Principaux" {
		t.Fatalf("unexpected label %q", MenuCategoryMains.Label())
	}
}

func TestParseDeliveryMode(t *testing.T) {
	if mode, err := ParseDeliveryMode(""); err != nil || mode != DeliveryModePickup {
		t.Fatalf("empty mode should default to pickup, got %s %v", mode, err)
	}
	if mode, err := ParseDeliveryMode("DELIVERY"); err != nil || mode != DeliveryModeDelivery {
		t.Fatalf("expected delivery, got %s %v", mode, err)
	}
	if _, err := ParseDeliveryMode("drone"); err == nil {
		t.Fatal("expected unknown mode to fail")
	}
	if DeliveryMode("drone").IsValid() {
		t.Fatal("drone must not be valid")
	}
}

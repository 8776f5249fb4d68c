package catalog

import (
	"github.com/jacmel/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// DefaultMenu is served until an admin saves a menu of their own.
func DefaultMenu() []MenuEntry {
	return []MenuEntry{
		{
			ID:          "1",
			Name:        "Soup Joumou",
			Description: "Soupe traditionnelle haïtienne au giraumon.",
			Ingredients: []string{"Giraumon", "Bœuf", "Pommes de terre", "Carottes", "Navet", "Macaroni", "Céleri"},
			Price:       decimal.NewFromInt(350),
			Category:    enums.MenuCategoryStarters,
			Available:   true,
			Featured:    true,
			Image:       "https://picsum.photos/400/300?random=1",
		},
		{
			ID:          "2",
			Name:        "Akra",
			Description: "Beignets de malanga croustillants servis avec du pikliz.",
			Ingredients: []string{"Malanga râpé", "Épices", "Piment", "Farine", "Pikliz (Chou, Carotte, Vinaigre)"},
			Price:       decimal.NewFromInt(150),
			Category:    enums.MenuCategoryStarters,
			Available:   true,
			Image:       "https://picsum.photos/400/300?random=2",
		},
		{
			ID:          "3",
			Name:        "Griot de Porc",
			Description: "Morceaux de porc marinés et frits, plat national.",
			Ingredients: []string{"Épaule de porc", "Orange amère", "Piment Scotch Bonnet", "Ail", "Thym", "Clous de girofle"},
			Price:       decimal.NewFromInt(750),
			Category:    enums.MenuCategoryMains,
			Available:   true,
			Featured:    true,
			Image:       "https://picsum.photos/400/300?random=3",
		},
		{
			ID:          "4",
			Name:        "Poisson Gros Sel",
			Description: "Vivaneau frais cuit à la vapeur.",
			Ingredients: []string{"Vivaneau entier", "Gros sel", "Poivrons", "Oignons", "Citron vert", "Huile d'olive"},
			Price:       decimal.NewFromInt(1200),
			Category:    enums.MenuCategoryMains,
			Available:   true,
			Featured:    true,
			Image:       "https://picsum.photos/400/300?random=4",
		},
		{
			ID:          "5",
			Name:        "Douce Macos",
			Description: "Fudge traditionnel de Petit-Goâve.",
			Ingredients: []string{"Lait", "Sucre", "Cannelle", "Vanille", "Chocolat", "Colorants naturels"},
			Price:       decimal.NewFromInt(200),
			Category:    enums.MenuCategoryDesserts,
			Available:   true,
			Image:       "https://picsum.photos/400/300?random=5",
		},
		{
			ID:          "6",
			Name:        "Jus de Corossol",
			Description: "Jus frais naturel et onctueux.",
			Ingredients: []string{"Corossol frais", "Lait évaporé", "Sucre de canne", "Muscade", "Zeste de citron vert"},
			Price:       decimal.NewFromInt(150),
			Category:    enums.MenuCategoryDrinks,
			Available:   true,
			Image:       "https://picsum.photos/400/300?random=6",
		},
		{
			ID:          "7",
			Name:        "Prestige",
			Description: "Bière nationale bien glacée.",
			Ingredients: []string{"Malt", "Houblon", "Eau", "Levure"},
			Price:       decimal.NewFromInt(125),
			Category:    enums.MenuCategoryDrinks,
			Available:   true,
			Image:       "https://picsum.photos/400/300?random=7",
		},
	}
}

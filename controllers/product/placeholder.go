package productcontroller

import (
	"github.com/shopspring/decimal"

	"github.com/Ixollozi/clothing-shop/models"
)

// PlaceholderProducts is the showcase catalog served while the real one
// is still empty. It is a separate, explicitly selected source; nothing
// here is ever written to the database.
func PlaceholderProducts() []models.Product {
	old := decimal.NewFromInt(450000)
	return []models.Product{
		{
			ID:              1,
			Name:            "Classic White Shirt",
			Slug:            "classic-white-shirt",
			Description:     "Cotton shirt for every day.",
			Price:           decimal.NewFromInt(280000),
			AvailableSizes:  "S, M, L, XL",
			AvailableColors: "white",
			IsActive:        true,
		},
		{
			ID:              2,
			Name:            "Slim Fit Jeans",
			Slug:            "slim-fit-jeans",
			Description:     "Stretch denim, mid rise.",
			Price:           decimal.NewFromInt(350000),
			OldPrice:        &old,
			AvailableSizes:  "S, M, L",
			AvailableColors: "blue, black",
			IsActive:        true,
		},
		{
			ID:              3,
			Name:            "Oversized Hoodie",
			Slug:            "oversized-hoodie",
			Description:     "Fleece-lined, unisex cut.",
			Price:           decimal.NewFromInt(320000),
			AvailableSizes:  "M, L, XL, XXL",
			AvailableColors: "gray, black, green",
			IsActive:        true,
		},
	}
}

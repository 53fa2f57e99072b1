package catalog

import "github.com/shopspring/decimal"

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func pricePtr(value string) *decimal.Decimal {
	d := price(value)
	return &d
}

// sampleProducts mirrors the storefront's seeded inventory. There is no
// product database; this table is the catalog.
var sampleProducts = []Product{
	{
		ID:            "1",
		Name:          "Fresh Avocados",
		Price:         price("4.99"),
		OriginalPrice: pricePtr("6.99"),
		Category:      "fruits",
		Brand:         "Organic Valley",
		Unit:          "per piece",
		ImageURL:      "https://images.pexels.com/photos/557659/pexels-photo-557659.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:        4.8,
		Featured:      true,
	},
	{
		ID:       "2",
		Name:     "Organic Bananas",
		Price:    price("2.49"),
		Category: "fruits",
		Brand:    "Fresh Farm",
		Unit:     "per bunch",
		ImageURL: "https://images.pexels.com/photos/2872755/pexels-photo-2872755.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.6,
		Featured: true,
	},
	{
		ID:            "3",
		Name:          "Fresh Salmon",
		Price:         price("12.99"),
		OriginalPrice: pricePtr("15.99"),
		Category:      "meat",
		Brand:         "Ocean Fresh",
		Unit:          "per lb",
		ImageURL:      "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:        4.9,
		Featured:      true,
	},
	{
		ID:       "4",
		Name:     "Greek Yogurt",
		Price:    price("3.99"),
		Category: "dairy",
		Brand:    "Dairy Pure",
		Unit:     "per cup",
		ImageURL: "https://images.pexels.com/photos/851555/pexels-photo-851555.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.7,
	},
	{
		ID:       "5",
		Name:     "Artisan Bread",
		Price:    price("4.49"),
		Category: "bakery",
		Brand:    "Artisan Bakery",
		Unit:     "per loaf",
		ImageURL: "https://images.pexels.com/photos/209206/pexels-photo-209206.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.5,
	},
	{
		ID:       "6",
		Name:     "Cherry Tomatoes",
		Price:    price("3.49"),
		Category: "vegetables",
		Brand:    "Fresh Farm",
		Unit:     "per pack",
		ImageURL: "https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.4,
	},
	{
		ID:       "7",
		Name:     "Organic Spinach",
		Price:    price("2.99"),
		Category: "vegetables",
		Brand:    "Organic Valley",
		Unit:     "per bag",
		ImageURL: "https://images.pexels.com/photos/2328460/pexels-photo-2328460.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.3,
	},
	{
		ID:       "8",
		Name:     "Almond Milk",
		Price:    price("3.79"),
		Category: "dairy",
		Brand:    "Nature's Best",
		Unit:     "per carton",
		ImageURL: "https://images.pexels.com/photos/6120375/pexels-photo-6120375.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:   4.6,
	},
}

package catalog

import "github.com/shopspring/decimal"

// Product is the immutable snapshot handed to the cart and favorites engines.
// The engines only interpret ID and Price; everything else is carried through
// for the client to render.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	Unit          string           `json:"unit"`
	ImageURL      string           `json:"image"`
	Rating        float64          `json:"rating"`
	Featured      bool             `json:"featured"`
}

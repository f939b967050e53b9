package cart

import "github.com/shopspring/decimal"

// DefaultItems returns the storefront's seeded cart. New checkout sessions
// start from this snapshot.
func DefaultItems() []LineItem {
	return []LineItem{
		{
			ID:           1,
			Title:        "rightGLUE",
			Price:        decimal.RequireFromString("2.71"),
			Quantity:     1,
			ThumbnailRef: "/jglue.png",
		},
		{
			ID:           2,
			Title:        "rightTAPES",
			Price:        decimal.RequireFromString("5.8"),
			Quantity:     1,
			ThumbnailRef: "/rightTapes.webp",
		},
	}
}

package cart

import "github.com/shopspring/decimal"

// LineItem is one product entry and its quantity in the cart.
type LineItem struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ThumbnailRef string          `json:"thumbnail_ref"`
}

// ExtendedPrice returns price × quantity for the line.
func (l LineItem) ExtendedPrice() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Increase returns a new snapshot with the matching item's quantity bumped by
// one. Unknown ids are a silent no-op.
func Increase(items []LineItem, id int64) []LineItem {
	next := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID == id {
			item.Quantity++
		}
		next = append(next, item)
	}
	return next
}

// Decrease returns a new snapshot with the matching item's quantity reduced
// by one; items that drop to zero are filtered out, so a quantity-zero line
// never exists in the collection. Unknown ids are a silent no-op.
func Decrease(items []LineItem, id int64) []LineItem {
	next := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID == id {
			item.Quantity--
		}
		if item.Quantity <= 0 {
			continue
		}
		next = append(next, item)
	}
	return next
}

// Remove returns a new snapshot without the matching item, regardless of its
// quantity. Unknown ids are a silent no-op.
func Remove(items []LineItem, id int64) []LineItem {
	next := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID == id {
			continue
		}
		next = append(next, item)
	}
	return next
}

// Clone returns an independent copy of the snapshot.
func Clone(items []LineItem) []LineItem {
	next := make([]LineItem, len(items))
	copy(next, items)
	return next
}

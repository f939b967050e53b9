package controllers

import (
	"github.com/kishanta/rightstore-backend/internal/cart"
	"github.com/kishanta/rightstore-backend/internal/checkout"
	"github.com/kishanta/rightstore-backend/internal/pricing"
	"github.com/kishanta/rightstore-backend/pkg/types"
)

type lineItemView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type orderSummaryView struct {
	Subtotal       string `json:"subtotal"`
	Shipping       string `json:"shipping"`
	Total          string `json:"total"`
	CouponEligible bool   `json:"coupon_eligible"`
}

type checkoutView struct {
	SessionID     string                 `json:"session_id"`
	Step          string                 `json:"step"`
	Items         []lineItemView         `json:"items"`
	Address       *types.ShippingAddress `json:"address,omitempty"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	Summary       orderSummaryView       `json:"summary"`
	CanAdvance    bool                   `json:"can_advance"`
}

// newCheckoutView renders the session with its derived totals. Prices are
// fixed to two decimals at the edge; the decimals underneath stay exact.
func newCheckoutView(session *checkout.Session, quote pricing.Quote) checkoutView {
	items := make([]lineItemView, 0, len(session.Items))
	for _, item := range session.Items {
		items = append(items, newLineItemView(item))
	}
	return checkoutView{
		SessionID:     session.ID.String(),
		Step:          session.Step.String(),
		Items:         items,
		Address:       session.Address,
		PaymentMethod: session.PaymentMethod.String(),
		Summary: orderSummaryView{
			Subtotal:       quote.DisplaySubtotal(),
			Shipping:       quote.ShippingCharge.StringFixed(2),
			Total:          quote.DisplayTotal(),
			CouponEligible: quote.CouponEligible,
		},
		CanAdvance: len(session.Items) > 0,
	}
}

func newLineItemView(item cart.LineItem) lineItemView {
	return lineItemView{
		ID:        item.ID,
		Title:     item.Title,
		Price:     item.Price.StringFixed(2),
		Quantity:  item.Quantity,
		LineTotal: item.ExtendedPrice().StringFixed(2),
		Thumbnail: item.ThumbnailRef,
	}
}

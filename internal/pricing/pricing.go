package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/kishanta/rightstore-backend/internal/cart"
	"github.com/kishanta/rightstore-backend/pkg/config"
)

// Quote is the derived order total breakdown. It is recomputed from the cart
// snapshot on every read and never stored.
type Quote struct {
	Subtotal       decimal.Decimal
	ShippingCharge decimal.Decimal
	Total          decimal.Decimal
	CouponEligible bool
}

// DisplaySubtotal renders the subtotal with two decimal places.
func (q Quote) DisplaySubtotal() string {
	return q.Subtotal.StringFixed(2)
}

// DisplayTotal renders the total with two decimal places.
func (q Quote) DisplayTotal() string {
	return q.Total.StringFixed(2)
}

// TotalCents returns the total in minor units for the payment provider.
func (q Quote) TotalCents() int64 {
	return q.Total.Mul(decimal.NewFromInt(100)).IntPart()
}

// Calculator derives quotes from cart snapshots using the configured
// shipping and coupon rules.
type Calculator struct {
	shippingFee       decimal.Decimal
	shippingThreshold decimal.Decimal
	couponThreshold   decimal.Decimal
}

// NewCalculator builds a calculator from the checkout configuration.
func NewCalculator(cfg config.CheckoutConfig) *Calculator {
	return &Calculator{
		shippingFee:       cfg.ShippingFee,
		shippingThreshold: cfg.ShippingThreshold,
		couponThreshold:   cfg.CouponThreshold,
	}
}

// Quote computes subtotal, shipping surcharge and total for the snapshot.
// The surcharge applies strictly when 0 < subtotal < threshold: an empty
// cart ships free, and so does a subtotal exactly at the threshold.
func (c *Calculator) Quote(items []cart.LineItem) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.ExtendedPrice())
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(c.shippingThreshold) {
		shipping = c.shippingFee
	}

	return Quote{
		Subtotal:       subtotal,
		ShippingCharge: shipping,
		Total:          subtotal.Add(shipping),
		CouponEligible: subtotal.GreaterThan(c.couponThreshold),
	}
}

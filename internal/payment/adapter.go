package payment

import (
	"context"

	"github.com/kishanta/rightstore-backend/pkg/enums"
)

// ConfirmInput carries everything an adapter needs to settle a payment. The
// amount is derived from the current cart quote, never hardcoded.
type ConfirmInput struct {
	SessionID   string
	AmountCents int64
	Currency    string

	// PaymentMethodID is the provider-issued handle for the tokenized card
	// fields. Raw card data never reaches this service. Unused by the
	// cash-on-delivery variant.
	PaymentMethodID string
}

// Receipt reports a successful confirmation back to the checkout flow.
type Receipt struct {
	Method    enums.PaymentMethod `json:"method"`
	Reference string              `json:"reference"`
	CardBrand enums.CardBrand     `json:"card_brand,omitempty"`
}

// Confirmer is the shared confirm-payment capability. The set of
// implementations is closed over the selectable payment methods; adding one
// means registering another Confirmer, not touching transition logic.
type Confirmer interface {
	Method() enums.PaymentMethod
	Confirm(ctx context.Context, input ConfirmInput) (*Receipt, error)
}

// Registry resolves the adapter for a selected payment method.
type Registry struct {
	byMethod map[enums.PaymentMethod]Confirmer
}

// NewRegistry indexes the provided confirmers by method.
func NewRegistry(confirmers ...Confirmer) *Registry {
	byMethod := make(map[enums.PaymentMethod]Confirmer, len(confirmers))
	for _, confirmer := range confirmers {
		if confirmer == nil {
			continue
		}
		byMethod[confirmer.Method()] = confirmer
	}
	return &Registry{byMethod: byMethod}
}

// For returns the confirmer registered for the method, or nil.
func (r *Registry) For(method enums.PaymentMethod) Confirmer {
	if r == nil {
		return nil
	}
	return r.byMethod[method]
}

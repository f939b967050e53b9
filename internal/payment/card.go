package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v84"

	"github.com/kishanta/rightstore-backend/pkg/enums"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
	"github.com/kishanta/rightstore-backend/pkg/logger"
)

// CardConfirmer settles card payments through the provider: it requests an
// authorization token from the intent endpoint, then confirms the intent
// with the tokenized card handle. Confirmation never starts before the token
// request resolves.
type CardConfirmer struct {
	tokens TokenSource
	stripe StripePaymentClient
	logg   *logger.Logger
}

// NewCardConfirmer builds the card adapter. Either collaborator may be nil
// when the provider is not configured; Confirm then fails with
// ErrAdapterNotReady instead of a silent no-op.
func NewCardConfirmer(tokens TokenSource, stripeClient StripePaymentClient, logg *logger.Logger) *CardConfirmer {
	return &CardConfirmer{
		tokens: tokens,
		stripe: stripeClient,
		logg:   logg,
	}
}

func (c *CardConfirmer) Method() enums.PaymentMethod {
	return enums.PaymentMethodCard
}

func (c *CardConfirmer) Confirm(ctx context.Context, input ConfirmInput) (*Receipt, error) {
	if c == nil || c.tokens == nil || c.stripe == nil {
		if c != nil && c.logg != nil {
			c.logg.Warn(ctx, "card confirm refused: provider client not initialized")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, ErrAdapterNotReady, "card payment unavailable")
	}

	methodID := strings.TrimSpace(input.PaymentMethodID)
	if methodID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment_method_id is required")
	}
	if input.AmountCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment amount must be positive")
	}

	clientSecret, err := c.tokens.CreateIntent(ctx, input.AmountCents)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("%w: %v", ErrTokenRequest, err), "requesting authorization token")
	}

	intentID, err := intentIDFromClientSecret(clientSecret)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("%w: %v", ErrTokenRequest, err), "requesting authorization token")
	}

	intent, err := c.stripe.ConfirmIntent(ctx, intentID, &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(methodID),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("%w: %v", ErrPaymentConfirmation, err), "confirming card payment")
	}
	if intent == nil || intent.Status != stripe.PaymentIntentStatusSucceeded {
		status := "missing intent"
		if intent != nil {
			status = string(intent.Status)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("%w: intent status %s", ErrPaymentConfirmation, status), "confirming card payment")
	}

	return &Receipt{
		Method:    enums.PaymentMethodCard,
		Reference: intent.ID,
		CardBrand: c.lookupBrand(ctx, methodID),
	}, nil
}

// LookupBrand reads the provider's card metadata for the tokenized handle.
// Cosmetic only: every failure degrades to the unknown brand.
func (c *CardConfirmer) LookupBrand(ctx context.Context, paymentMethodID string) enums.CardBrand {
	if c == nil || c.stripe == nil {
		return enums.CardBrandUnknown
	}
	return c.lookupBrand(ctx, paymentMethodID)
}

func (c *CardConfirmer) lookupBrand(ctx context.Context, paymentMethodID string) enums.CardBrand {
	method, err := c.stripe.GetPaymentMethod(ctx, strings.TrimSpace(paymentMethodID), nil)
	if err != nil || method == nil || method.Card == nil {
		if err != nil && c.logg != nil {
			c.logg.Warn(ctx, "card brand lookup failed")
		}
		return enums.CardBrandUnknown
	}
	return enums.NormalizeCardBrand(string(method.Card.Brand))
}

// intentIDFromClientSecret extracts the intent id from a "pi_..._secret_..."
// token. A secret without that shape means the endpoint response was
// malformed.
func intentIDFromClientSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || !strings.HasPrefix(id, "pi_") {
		return "", fmt.Errorf("malformed client secret")
	}
	return id, nil
}

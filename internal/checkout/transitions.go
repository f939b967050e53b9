package checkout

import (
	"fmt"

	"github.com/kishanta/rightstore-backend/pkg/enums"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
)

// Event is a checkout flow trigger.
type Event string

const (
	EventProceedToAddress Event = "proceed_to_address"
	EventBackToCart       Event = "back_to_cart"
	EventProceedToPayment Event = "proceed_to_payment"
	EventCancelPayment    Event = "cancel_payment"
	EventPaymentSucceeded Event = "payment_succeeded"
	EventContinueShopping Event = "continue_shopping"
)

// transitions defines the valid flow. The key is the current step, the value
// maps each accepted event to the resulting step. The flow is linear with two
// escape hatches back to Cart and no skip-ahead edges.
var transitions = map[enums.CheckoutStep]map[Event]enums.CheckoutStep{
	enums.CheckoutStepCart: {
		EventProceedToAddress: enums.CheckoutStepAddress,
	},
	enums.CheckoutStepAddress: {
		EventBackToCart:       enums.CheckoutStepCart,
		EventProceedToPayment: enums.CheckoutStepPayment,
	},
	enums.CheckoutStepPayment: {
		EventCancelPayment:    enums.CheckoutStepCart,
		EventPaymentSucceeded: enums.CheckoutStepConfirmation,
	},
	enums.CheckoutStepConfirmation: {
		EventContinueShopping: enums.CheckoutStepCart,
	},
}

// Next returns the step reached by applying event at the given step.
func Next(step enums.CheckoutStep, event Event) (enums.CheckoutStep, error) {
	accepted, ok := transitions[step]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("unknown checkout step %q", step))
	}
	next, ok := accepted[event]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("event %q is not allowed in step %q", event, step)).
			WithDetails(map[string]any{"step": step.String(), "event": string(event)})
	}
	return next, nil
}

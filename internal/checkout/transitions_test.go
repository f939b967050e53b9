package checkout

import (
	"testing"

	"github.com/kishanta/rightstore-backend/pkg/enums"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
)

func TestNextAcceptsDefinedTransitions(t *testing.T) {
	cases := []struct {
		from  enums.CheckoutStep
		event Event
		to    enums.CheckoutStep
	}{
		{enums.CheckoutStepCart, EventProceedToAddress, enums.CheckoutStepAddress},
		{enums.CheckoutStepAddress, EventBackToCart, enums.CheckoutStepCart},
		{enums.CheckoutStepAddress, EventProceedToPayment, enums.CheckoutStepPayment},
		{enums.CheckoutStepPayment, EventCancelPayment, enums.CheckoutStepCart},
		{enums.CheckoutStepPayment, EventPaymentSucceeded, enums.CheckoutStepConfirmation},
		{enums.CheckoutStepConfirmation, EventContinueShopping, enums.CheckoutStepCart},
	}
	for _, tc := range cases {
		next, err := Next(tc.from, tc.event)
		if err != nil {
			t.Fatalf("%s + %s: unexpected error %v", tc.from, tc.event, err)
		}
		if next != tc.to {
			t.Fatalf("%s + %s: expected %s, got %s", tc.from, tc.event, tc.to, next)
		}
	}
}

func TestNextRejectsEveryUndefinedPair(t *testing.T) {
	steps := []enums.CheckoutStep{
		enums.CheckoutStepCart,
		enums.CheckoutStepAddress,
		enums.CheckoutStepPayment,
		enums.CheckoutStepConfirmation,
	}
	events := []Event{
		EventProceedToAddress,
		EventBackToCart,
		EventProceedToPayment,
		EventCancelPayment,
		EventPaymentSucceeded,
		EventContinueShopping,
	}

	defined := map[enums.CheckoutStep]map[Event]bool{
		enums.CheckoutStepCart:         {EventProceedToAddress: true},
		enums.CheckoutStepAddress:      {EventBackToCart: true, EventProceedToPayment: true},
		enums.CheckoutStepPayment:      {EventCancelPayment: true, EventPaymentSucceeded: true},
		enums.CheckoutStepConfirmation: {EventContinueShopping: true},
	}

	for _, step := range steps {
		for _, event := range events {
			if defined[step][event] {
				continue
			}
			_, err := Next(step, event)
			if err == nil {
				t.Fatalf("%s + %s: expected rejection", step, event)
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
				t.Fatalf("%s + %s: expected state conflict, got %v", step, event, err)
			}
		}
	}
}

func TestNextRejectsUnknownStep(t *testing.T) {
	if _, err := Next(enums.CheckoutStep("review"), EventBackToCart); err == nil {
		t.Fatal("expected error for unknown step")
	}
}

package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kishanta/rightstore-backend/internal/cart"
	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/internal/pricing"
	"github.com/kishanta/rightstore-backend/pkg/enums"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
	"github.com/kishanta/rightstore-backend/pkg/logger"
	"github.com/kishanta/rightstore-backend/pkg/metrics"
	"github.com/kishanta/rightstore-backend/pkg/types"
)

// Service drives the checkout flow for one session at a time.
type Service interface {
	CreateSession(ctx context.Context) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)

	IncreaseItem(ctx context.Context, id uuid.UUID, itemID int64) (*Session, error)
	DecreaseItem(ctx context.Context, id uuid.UUID, itemID int64) (*Session, error)
	RemoveItem(ctx context.Context, id uuid.UUID, itemID int64) (*Session, error)

	ProceedToAddress(ctx context.Context, id uuid.UUID) (*Session, error)
	SubmitAddress(ctx context.Context, id uuid.UUID, address types.ShippingAddress) (*Session, error)
	BackToCart(ctx context.Context, id uuid.UUID) (*Session, error)
	CancelPayment(ctx context.Context, id uuid.UUID) (*Session, error)
	SelectPaymentMethod(ctx context.Context, id uuid.UUID, method enums.PaymentMethod) (*Session, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, input ConfirmPaymentInput) (*Session, *payment.Receipt, error)
	ContinueShopping(ctx context.Context, id uuid.UUID) (*Session, error)

	Quote(items []cart.LineItem) pricing.Quote
}

// ConfirmPaymentInput carries the per-attempt payment details.
type ConfirmPaymentInput struct {
	// PaymentMethodID is the provider handle for tokenized card fields.
	// Ignored for cash on delivery.
	PaymentMethodID string
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Store           Store
	Pricing         *pricing.Calculator
	Adapters        *payment.Registry
	Metrics         *metrics.CheckoutMetrics
	Logger          *logger.Logger
	ResetOnContinue bool
}

type service struct {
	store           Store
	pricing         *pricing.Calculator
	adapters        *payment.Registry
	metrics         *metrics.CheckoutMetrics
	logg            *logger.Logger
	resetOnContinue bool
}

// NewService constructs a checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session store required")
	}
	if params.Pricing == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "pricing calculator required")
	}
	if params.Adapters == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payment adapter registry required")
	}

	return &service{
		store:           params.Store,
		pricing:         params.Pricing,
		adapters:        params.Adapters,
		metrics:         params.Metrics,
		logg:            params.Logger,
		resetOnContinue: params.ResetOnContinue,
	}, nil
}

func (s *service) CreateSession(ctx context.Context) (*Session, error) {
	session := NewSession()
	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, session.ID.String()), "checkout session created")
	}
	return session, nil
}

func (s *service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *service) IncreaseItem(ctx context.Context, id uuid.UUID, itemID int64) (*Session, error) {
	return s.mutateItems(ctx, id, func(items []cart.LineItem) []cart.LineItem {
		return cart.Increase(items, itemID)
	})
}

func (s *service) DecreaseItem(ctx context.Context, id uuid.UUID, itemID int64) (*Session, error) {
	return s.mutateItems(ctx, id, func(items []cart.LineItem) []cart.LineItem {
		return cart.Decrease(items, itemID)
	})
}

func (s *service) RemoveItem(ctx context.Context, id uuid.UUID, itemID int64) (*Session, error) {
	return s.mutateItems(ctx, id, func(items []cart.LineItem) []cart.LineItem {
		return cart.Remove(items, itemID)
	})
}

// mutateItems swaps the cart snapshot. Item operations never fail; unknown
// ids fall through as no-ops.
func (s *service) mutateItems(ctx context.Context, id uuid.UUID, mutate func([]cart.LineItem) []cart.LineItem) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Items = mutate(session.Items)
	return s.save(ctx, session)
}

func (s *service) ProceedToAddress(ctx context.Context, id uuid.UUID) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot proceed with an empty cart")
	}
	return s.apply(ctx, session, EventProceedToAddress)
}

func (s *service) SubmitAddress(ctx context.Context, id uuid.UUID, address types.ShippingAddress) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// No field validation beyond decoding; the original flow accepts any
	// address content.
	addr := address
	session.Address = &addr
	return s.apply(ctx, session, EventProceedToPayment)
}

func (s *service) BackToCart(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.applyByID(ctx, id, EventBackToCart)
}

func (s *service) CancelPayment(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.applyByID(ctx, id, EventCancelPayment)
}

func (s *service) SelectPaymentMethod(ctx context.Context, id uuid.UUID, method enums.PaymentMethod) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != enums.CheckoutStepPayment {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "payment method can only be selected in the payment step")
	}
	if !method.IsSelectable() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}
	session.PaymentMethod = method
	return s.save(ctx, session)
}

func (s *service) ConfirmPayment(ctx context.Context, id uuid.UUID, input ConfirmPaymentInput) (*Session, *payment.Receipt, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if session.Step != enums.CheckoutStepPayment {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "payment can only be confirmed in the payment step")
	}
	if !session.PaymentMethod.IsSelectable() {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "select a payment method first")
	}

	confirmer := s.adapters.For(session.PaymentMethod)
	if confirmer == nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeInternal, "no adapter registered for payment method")
	}

	quote := s.pricing.Quote(session.Items)
	ctx = s.withSessionFields(ctx, session)
	s.metrics.IncAttempt(session.PaymentMethod.String())

	start := time.Now()
	receipt, err := confirmer.Confirm(ctx, payment.ConfirmInput{
		SessionID:       session.ID.String(),
		AmountCents:     quote.TotalCents(),
		Currency:        "usd",
		PaymentMethodID: input.PaymentMethodID,
	})
	s.metrics.ObserveConfirmDuration(session.PaymentMethod.String(), time.Since(start))
	if err != nil {
		// Recovered locally: the session stays in the payment step so the
		// buyer can edit fields and resubmit.
		s.metrics.IncFailure(session.PaymentMethod.String(), payment.FailureReason(err))
		if s.logg != nil {
			s.logg.Error(ctx, "payment confirmation failed", err)
		}
		return nil, nil, err
	}

	session, err = s.apply(ctx, session, EventPaymentSucceeded)
	if err != nil {
		return nil, nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "reference", receipt.Reference), "payment confirmed")
	}
	return session, receipt, nil
}

func (s *service) ContinueShopping(ctx context.Context, id uuid.UUID) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := Next(session.Step, EventContinueShopping)
	if err != nil {
		return nil, err
	}
	session.Step = next
	if s.resetOnContinue {
		session.Items = cart.DefaultItems()
		session.Address = nil
		session.PaymentMethod = enums.PaymentMethodUnset
	}
	s.metrics.IncTransition(string(EventContinueShopping))
	return s.save(ctx, session)
}

func (s *service) Quote(items []cart.LineItem) pricing.Quote {
	return s.pricing.Quote(items)
}

func (s *service) applyByID(ctx context.Context, id uuid.UUID, event Event) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, session, event)
}

func (s *service) apply(ctx context.Context, session *Session, event Event) (*Session, error) {
	next, err := Next(session.Step, event)
	if err != nil {
		return nil, err
	}
	session.Step = next
	s.metrics.IncTransition(string(event))
	return s.save(ctx, session)
}

func (s *service) save(ctx context.Context, session *Session) (*Session, error) {
	session.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) withSessionFields(ctx context.Context, session *Session) context.Context {
	if s.logg == nil {
		return ctx
	}
	ctx = s.logg.WithSessionID(ctx, session.ID.String())
	ctx = s.logg.WithCheckoutStep(ctx, session.Step.String())
	return s.logg.WithPaymentMethod(ctx, session.PaymentMethod.String())
}

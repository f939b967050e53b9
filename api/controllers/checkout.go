package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kishanta/rightstore-backend/api/middleware"
	"github.com/kishanta/rightstore-backend/api/responses"
	"github.com/kishanta/rightstore-backend/api/validators"
	checkoutsvc "github.com/kishanta/rightstore-backend/internal/checkout"
	"github.com/kishanta/rightstore-backend/pkg/enums"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
	"github.com/kishanta/rightstore-backend/pkg/logger"
	"github.com/kishanta/rightstore-backend/pkg/types"
)

// CheckoutCreateSession opens a new checkout session seeded with the default
// cart. The session id comes back in the body and the session header.
func CheckoutCreateSession(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		session, err := svc.CreateSession(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set(middleware.SessionHeader, session.ID.String())
		responses.WriteSuccessStatus(w, http.StatusCreated, newCheckoutView(session, svc.Quote(session.Items)))
	}
}

// CheckoutView returns the current session with derived totals.
func CheckoutView(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "checkout session missing"))
			return
		}

		session, err := svc.GetSession(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(session, svc.Quote(session.Items)))
	}
}

// CheckoutAdvance moves the session from the cart to the address step.
func CheckoutAdvance(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return stepHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID) (*checkoutsvc.Session, error) {
		return svc.ProceedToAddress(ctx, sessionID)
	})
}

type addressRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Street        string `json:"street" validate:"required"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	CountryCode   string `json:"country_code"`
	SaveForFuture bool   `json:"save_for_future"`
}

// CheckoutAddress stores the shipping address and advances to payment.
func CheckoutAddress(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "checkout session missing"))
			return
		}

		var payload addressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.SubmitAddress(r.Context(), sessionID, types.ShippingAddress{
			FullName:      payload.FullName,
			Street:        payload.Street,
			City:          payload.City,
			State:         payload.State,
			Zip:           payload.Zip,
			CountryCode:   payload.CountryCode,
			SaveForFuture: payload.SaveForFuture,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(session, svc.Quote(session.Items)))
	}
}

// CheckoutBack returns from the address step to the cart.
func CheckoutBack(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return stepHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID) (*checkoutsvc.Session, error) {
		return svc.BackToCart(ctx, sessionID)
	})
}

// CheckoutCancel abandons the payment step back to the cart.
func CheckoutCancel(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return stepHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID) (*checkoutsvc.Session, error) {
		return svc.CancelPayment(ctx, sessionID)
	})
}

type paymentMethodRequest struct {
	Method string `json:"method" validate:"required"`
}

// CheckoutPaymentMethod records the buyer's payment method choice.
func CheckoutPaymentMethod(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "checkout session missing"))
			return
		}

		var payload paymentMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(payload.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		session, err := svc.SelectPaymentMethod(r.Context(), sessionID, method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(session, svc.Quote(session.Items)))
	}
}

type confirmPaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

type confirmPaymentResponse struct {
	Checkout checkoutView `json:"checkout"`
	Receipt  receiptView  `json:"receipt"`
}

type receiptView struct {
	Method    string `json:"method"`
	Reference string `json:"reference"`
	CardBrand string `json:"card_brand,omitempty"`
}

// CheckoutConfirm runs the selected payment adapter against the order total.
// A failed attempt leaves the session in the payment step for a retry.
func CheckoutConfirm(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "checkout session missing"))
			return
		}

		var payload confirmPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, receipt, err := svc.ConfirmPayment(r.Context(), sessionID, checkoutsvc.ConfirmPaymentInput{
			PaymentMethodID: payload.PaymentMethodID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, confirmPaymentResponse{
			Checkout: newCheckoutView(session, svc.Quote(session.Items)),
			Receipt: receiptView{
				Method:    receipt.Method.String(),
				Reference: receipt.Reference,
				CardBrand: receipt.CardBrand.String(),
			},
		})
	}
}

// CheckoutContinue leaves the confirmation screen back to the cart.
func CheckoutContinue(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return stepHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID) (*checkoutsvc.Session, error) {
		return svc.ContinueShopping(ctx, sessionID)
	})
}

func stepHandler(
	svc checkoutsvc.Service,
	logg *logger.Logger,
	op func(context.Context, checkoutsvc.Service, uuid.UUID) (*checkoutsvc.Session, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "checkout session missing"))
			return
		}

		session, err := op(r.Context(), svc, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(session, svc.Quote(session.Items)))
	}
}

package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v84"

	"github.com/kishanta/rightstore-backend/api/responses"
	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/pkg/config"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
	"github.com/kishanta/rightstore-backend/pkg/logger"
)

type createIntentRequest struct {
	Amount int64 `json:"amount"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret,omitempty"`
	Error        string `json:"error,omitempty"`
}

// PaymentIntentCreate issues a provider client secret for the given amount.
// This endpoint speaks the provider's bare JSON contract, not the API
// envelope, because the card adapter and the storefront both consume it
// directly.
func PaymentIntentCreate(client payment.StripePaymentClient, cfg config.PaymentIntentConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			writeIntentJSON(w, http.StatusServiceUnavailable, createIntentResponse{Error: "payment provider not configured"})
			return
		}

		var payload createIntentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeIntentJSON(w, http.StatusBadRequest, createIntentResponse{Error: "invalid request body"})
			return
		}
		if payload.Amount <= 0 {
			writeIntentJSON(w, http.StatusBadRequest, createIntentResponse{Error: "amount must be positive"})
			return
		}

		intent, err := client.CreateIntent(r.Context(), &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(payload.Amount),
			Currency: stripe.String(cfg.Currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		})
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "create payment intent failed", err)
			}
			writeIntentJSON(w, http.StatusBadGateway, createIntentResponse{Error: "failed to create payment intent"})
			return
		}

		writeIntentJSON(w, http.StatusOK, createIntentResponse{ClientSecret: intent.ClientSecret})
	}
}

func writeIntentJSON(w http.ResponseWriter, status int, payload createIntentResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// PaymentCardBrand looks up the card network behind a tokenized payment
// method, for display next to the masked number.
func PaymentCardBrand(confirmer *payment.CardConfirmer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methodID := strings.TrimSpace(r.URL.Query().Get("payment_method_id"))
		if methodID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "payment_method_id is required"))
			return
		}

		brand := confirmer.LookupBrand(r.Context(), methodID)
		responses.WriteSuccess(w, map[string]string{"brand": brand.String()})
	}
}

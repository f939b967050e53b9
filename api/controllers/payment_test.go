package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stripe/stripe-go/v84"

	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/pkg/config"
)

type fakeStripeClient struct {
	intent    *stripe.PaymentIntent
	createErr error
	method    *stripe.PaymentMethod
	methodErr error
	gotAmount int64
}

func (f *fakeStripeClient) ConfirmIntent(_ context.Context, _ string, _ *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	return f.intent, nil
}

func (f *fakeStripeClient) CreateIntent(_ context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if params != nil && params.Amount != nil {
		f.gotAmount = *params.Amount
	}
	return f.intent, f.createErr
}

func (f *fakeStripeClient) GetPaymentMethod(_ context.Context, _ string, _ *stripe.PaymentMethodParams) (*stripe.PaymentMethod, error) {
	return f.method, f.methodErr
}

func intentConfig() config.PaymentIntentConfig {
	return config.PaymentIntentConfig{Currency: "usd"}
}

func TestPaymentIntentCreateReturnsClientSecret(t *testing.T) {
	client := &fakeStripeClient{intent: &stripe.PaymentIntent{ClientSecret: "pi_1_secret_x"}}
	handler := PaymentIntentCreate(client, intentConfig(), nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"amount":1351}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if payload["clientSecret"] != "pi_1_secret_x" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if client.gotAmount != 1351 {
		t.Fatalf("expected amount forwarded, got %d", client.gotAmount)
	}
}

func TestPaymentIntentCreateRejectsNonPositiveAmount(t *testing.T) {
	handler := PaymentIntentCreate(&fakeStripeClient{}, intentConfig(), nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"amount":0}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Fatalf("expected error field, got %s", rec.Body.String())
	}
}

func TestPaymentIntentCreateWithoutProvider(t *testing.T) {
	handler := PaymentIntentCreate(nil, intentConfig(), nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"amount":100}`)))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestPaymentCardBrand(t *testing.T) {
	client := &fakeStripeClient{method: &stripe.PaymentMethod{Card: &stripe.PaymentMethodCard{Brand: "mastercard"}}}
	confirmer := payment.NewCardConfirmer(nil, client, nil)
	handler := PaymentCardBrand(confirmer, nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/payment/card-brand?payment_method_id=pm_1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.Data["brand"] != "mastercard" {
		t.Fatalf("unexpected brand %q", envelope.Data["brand"])
	}
}

func TestPaymentCardBrandRequiresMethodID(t *testing.T) {
	handler := PaymentCardBrand(payment.NewCardConfirmer(nil, nil, nil), nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/payment/card-brand", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

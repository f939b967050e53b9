package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kishanta/rightstore-backend/api/middleware"
	checkoutsvc "github.com/kishanta/rightstore-backend/internal/checkout"
	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/internal/pricing"
	"github.com/kishanta/rightstore-backend/pkg/config"
	"github.com/kishanta/rightstore-backend/pkg/enums"
	"github.com/kishanta/rightstore-backend/pkg/types"
)

type fakeConfirmer struct {
	method  enums.PaymentMethod
	receipt *payment.Receipt
	err     error
}

func (f *fakeConfirmer) Method() enums.PaymentMethod {
	return f.method
}

func (f *fakeConfirmer) Confirm(context.Context, payment.ConfirmInput) (*payment.Receipt, error) {
	return f.receipt, f.err
}

func newTestCheckoutService(t *testing.T, confirmers ...payment.Confirmer) checkoutsvc.Service {
	t.Helper()
	svc, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Store: checkoutsvc.NewMemoryStore(time.Minute),
		Pricing: pricing.NewCalculator(config.CheckoutConfig{
			ShippingFee:       decimal.NewFromInt(5),
			ShippingThreshold: decimal.NewFromInt(10),
			CouponThreshold:   decimal.NewFromInt(50),
		}),
		Adapters: payment.NewRegistry(confirmers...),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func withSession(req *http.Request, sessionID string) *http.Request {
	req.Header.Set(middleware.SessionHeader, sessionID)
	return req
}

func serveWithSession(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	middleware.CheckoutSession(nil)(handler).ServeHTTP(rec, req)
	return rec
}

func decodeCheckoutView(t *testing.T, body []byte) checkoutView {
	t.Helper()
	var envelope struct {
		Data checkoutView `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	return envelope.Data
}

func TestCheckoutCreateSessionReturnsSeededView(t *testing.T) {
	svc := newTestCheckoutService(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	CheckoutCreateSession(svc, nil)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Header().Get(middleware.SessionHeader) == "" {
		t.Fatal("expected session header set")
	}

	view := decodeCheckoutView(t, rec.Body.Bytes())
	if view.Step != "cart" {
		t.Fatalf("expected cart step, got %s", view.Step)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected seeded items, got %d", len(view.Items))
	}
	// 2.71 + 5.80 with the under-threshold shipping surcharge.
	if view.Summary.Subtotal != "8.51" || view.Summary.Shipping != "5.00" || view.Summary.Total != "13.51" {
		t.Fatalf("unexpected summary %+v", view.Summary)
	}
	if view.Summary.CouponEligible {
		t.Fatal("seeded cart must not be coupon eligible")
	}
	if !view.CanAdvance {
		t.Fatal("non-empty cart must be able to advance")
	}
}

func TestCheckoutViewUnknownSession(t *testing.T) {
	svc := newTestCheckoutService(t)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil),
		"6fa459ea-ee8a-3ca4-894e-db77e160355e")
	rec := serveWithSession(CheckoutView(svc, nil), req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCheckoutAdvanceRejectsEmptyCart(t *testing.T) {
	svc := newTestCheckoutService(t)
	session, _ := svc.CreateSession(context.Background())
	svc.RemoveItem(context.Background(), session.ID, 1)
	svc.RemoveItem(context.Background(), session.ID, 2)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/advance", nil), session.ID.String())
	rec := serveWithSession(CheckoutAdvance(svc, nil), req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCheckoutAddressFlow(t *testing.T) {
	svc := newTestCheckoutService(t)
	session, _ := svc.CreateSession(context.Background())

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/advance", nil), session.ID.String())
	rec := serveWithSession(CheckoutAdvance(svc, nil), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("advance failed: %d %s", rec.Code, rec.Body.String())
	}

	body := strings.NewReader(`{"full_name":"Ada Lovelace","street":"12 Analytical Row","city":"London","zip":"N1"}`)
	req = withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/address", body), session.ID.String())
	rec = serveWithSession(CheckoutAddress(svc, nil), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("address failed: %d %s", rec.Code, rec.Body.String())
	}

	view := decodeCheckoutView(t, rec.Body.Bytes())
	if view.Step != "payment" {
		t.Fatalf("expected payment step, got %s", view.Step)
	}
	if view.Address == nil || view.Address.FullName != "Ada Lovelace" {
		t.Fatal("expected address echoed back")
	}
}

func TestCheckoutAddressValidation(t *testing.T) {
	svc := newTestCheckoutService(t)
	session, _ := svc.CreateSession(context.Background())
	svc.ProceedToAddress(context.Background(), session.ID)

	body := strings.NewReader(`{"city":"London"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/address", body), session.ID.String())
	rec := serveWithSession(CheckoutAddress(svc, nil), req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckoutPaymentMethodRejectsUnknown(t *testing.T) {
	svc := newTestCheckoutService(t)
	session := sessionAtPaymentStep(t, svc)

	body := strings.NewReader(`{"method":"wire"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/payment-method", body), session.ID.String())
	rec := serveWithSession(CheckoutPaymentMethod(svc, nil), req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckoutConfirmSuccess(t *testing.T) {
	confirmer := &fakeConfirmer{
		method:  enums.PaymentMethodCard,
		receipt: &payment.Receipt{Method: enums.PaymentMethodCard, Reference: "pi_42", CardBrand: enums.CardBrandVisa},
	}
	svc := newTestCheckoutService(t, confirmer)
	session := sessionAtPaymentStep(t, svc)
	svc.SelectPaymentMethod(context.Background(), session.ID, enums.PaymentMethodCard)

	body := strings.NewReader(`{"payment_method_id":"pm_1"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", body), session.ID.String())
	rec := serveWithSession(CheckoutConfirm(svc, nil), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data confirmPaymentResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.Data.Checkout.Step != "confirmation" {
		t.Fatalf("expected confirmation step, got %s", envelope.Data.Checkout.Step)
	}
	if envelope.Data.Receipt.Reference != "pi_42" || envelope.Data.Receipt.CardBrand != "visa" {
		t.Fatalf("unexpected receipt %+v", envelope.Data.Receipt)
	}
}

func TestCheckoutConfirmFailureKeepsPaymentStep(t *testing.T) {
	confirmer := &fakeConfirmer{
		method: enums.PaymentMethodCard,
		err:    payment.ErrPaymentConfirmation,
	}
	svc := newTestCheckoutService(t, confirmer)
	session := sessionAtPaymentStep(t, svc)
	svc.SelectPaymentMethod(context.Background(), session.ID, enums.PaymentMethodCard)

	body := strings.NewReader(`{"payment_method_id":"pm_1"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", body), session.ID.String())
	rec := serveWithSession(CheckoutConfirm(svc, nil), req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped adapter error, got %d", rec.Code)
	}

	loaded, _ := svc.GetSession(context.Background(), session.ID)
	if loaded.Step != enums.CheckoutStepPayment {
		t.Fatalf("expected payment step preserved, got %s", loaded.Step)
	}
}

func TestCheckoutContinueReturnsToCart(t *testing.T) {
	confirmer := &fakeConfirmer{
		method:  enums.PaymentMethodCOD,
		receipt: &payment.Receipt{Method: enums.PaymentMethodCOD, Reference: "cod-x"},
	}
	svc := newTestCheckoutService(t, confirmer)
	session := sessionAtPaymentStep(t, svc)
	svc.SelectPaymentMethod(context.Background(), session.ID, enums.PaymentMethodCOD)
	if _, _, err := svc.ConfirmPayment(context.Background(), session.ID, checkoutsvc.ConfirmPaymentInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout/continue", nil), session.ID.String())
	rec := serveWithSession(CheckoutContinue(svc, nil), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if view := decodeCheckoutView(t, rec.Body.Bytes()); view.Step != "cart" {
		t.Fatalf("expected cart step, got %s", view.Step)
	}
}

func sessionAtPaymentStep(t *testing.T, svc checkoutsvc.Service) *checkoutsvc.Session {
	t.Helper()
	session, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ProceedToAddress(context.Background(), session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SubmitAddress(context.Background(), session.ID, types.ShippingAddress{FullName: "A", Street: "B"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return session
}

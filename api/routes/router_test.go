package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kishanta/rightstore-backend/api/middleware"
	checkoutsvc "github.com/kishanta/rightstore-backend/internal/checkout"
	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/internal/pricing"
	"github.com/kishanta/rightstore-backend/pkg/config"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "dev"},
		Checkout: config.CheckoutConfig{
			ShippingFee:       decimal.NewFromInt(5),
			ShippingThreshold: decimal.NewFromInt(10),
			CouponThreshold:   decimal.NewFromInt(50),
		},
	}
	svc, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Store:    checkoutsvc.NewMemoryStore(time.Minute),
		Pricing:  pricing.NewCalculator(cfg.Checkout),
		Adapters: payment.NewRegistry(payment.NewCODConfirmer(0, nil)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewRouter(RouterParams{
		Config:          cfg,
		CheckoutService: svc,
		CardConfirmer:   payment.NewCardConfirmer(nil, nil, nil),
	})
}

func TestRouterHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterSessionLifecycle(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	sessionID := rec.Header().Get(middleware.SessionHeader)
	if sessionID == "" {
		t.Fatal("expected session header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Step string `json:"step"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.Data.Step != "cart" {
		t.Fatalf("expected cart step, got %s", envelope.Data.Step)
	}
}

func TestRouterCheckoutRequiresSessionHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouterIntentEndpointWithoutProvider(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kishanta/rightstore-backend/api/controllers"
	"github.com/kishanta/rightstore-backend/api/middleware"
	checkoutsvc "github.com/kishanta/rightstore-backend/internal/checkout"
	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/pkg/config"
	"github.com/kishanta/rightstore-backend/pkg/logger"
	"github.com/kishanta/rightstore-backend/pkg/redis"
)

// RouterParams groups everything the HTTP surface needs.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	Redis           redis.Pinger
	CheckoutService checkoutsvc.Service
	CardConfirmer   *payment.CardConfirmer
	StripeClient    payment.StripePaymentClient
	Metrics         prometheus.Gatherer
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.Redis))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Metrics, promhttp.HandlerOpts{}))
	}

	// Provider-facing contract outside the envelope.
	r.Post("/api/create-payment-intent", controllers.PaymentIntentCreate(params.StripeClient, cfg.PaymentIntent, logg))

	r.Post("/api/v1/sessions", controllers.CheckoutCreateSession(params.CheckoutService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.CheckoutSession(logg))

		r.Route("/api/v1/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutView(params.CheckoutService, logg))
			r.Post("/advance", controllers.CheckoutAdvance(params.CheckoutService, logg))
			r.Post("/address", controllers.CheckoutAddress(params.CheckoutService, logg))
			r.Post("/back", controllers.CheckoutBack(params.CheckoutService, logg))
			r.Post("/cancel", controllers.CheckoutCancel(params.CheckoutService, logg))
			r.Post("/payment-method", controllers.CheckoutPaymentMethod(params.CheckoutService, logg))
			r.Post("/confirm", controllers.CheckoutConfirm(params.CheckoutService, logg))
			r.Post("/continue", controllers.CheckoutContinue(params.CheckoutService, logg))
		})

		r.Route("/api/v1/cart/items/{itemID}", func(r chi.Router) {
			r.Post("/increase", controllers.CartItemIncrease(params.CheckoutService, logg))
			r.Post("/decrease", controllers.CartItemDecrease(params.CheckoutService, logg))
			r.Delete("/", controllers.CartItemRemove(params.CheckoutService, logg))
		})
	})

	r.Get("/api/v1/payment/card-brand", controllers.PaymentCardBrand(params.CardConfirmer, logg))

	return r
}

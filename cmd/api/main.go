package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kishanta/rightstore-backend/api/routes"
	checkoutsvc "github.com/kishanta/rightstore-backend/internal/checkout"
	"github.com/kishanta/rightstore-backend/internal/payment"
	"github.com/kishanta/rightstore-backend/internal/pricing"
	"github.com/kishanta/rightstore-backend/pkg/config"
	"github.com/kishanta/rightstore-backend/pkg/logger"
	"github.com/kishanta/rightstore-backend/pkg/metrics"
	"github.com/kishanta/rightstore-backend/pkg/redis"
	pkgstripe "github.com/kishanta/rightstore-backend/pkg/stripe"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	var redisPinger redis.Pinger
	var sessionStore checkoutsvc.Store
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisPinger = redisClient

		sessionStore, err = checkoutsvc.NewRedisStore(redisClient, cfg.Checkout.SessionTTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create session store", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, using in-memory session store")
		sessionStore = checkoutsvc.NewMemoryStore(cfg.Checkout.SessionTTL)
	}

	// Without a Stripe key the card adapter stays wired but reports itself
	// not ready on confirm; cash on delivery keeps working.
	var stripePayments payment.StripePaymentClient
	if cfg.Stripe.APIKey != "" {
		stripeClient, err := pkgstripe.NewClient(context.Background(), cfg.Stripe, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to initialize stripe", err)
			os.Exit(1)
		}
		stripePayments = payment.NewStripeClient(stripeClient)
	} else {
		logg.Warn(context.Background(), "stripe not configured, card payments unavailable")
	}

	intentClient := payment.NewIntentClient(cfg.PaymentIntent)
	codConfirmer := payment.NewCODConfirmer(cfg.Checkout.CODDelay, payment.NewLogNotifier(logg))
	cardConfirmer := payment.NewCardConfirmer(intentClient, stripePayments, logg)

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Store:           sessionStore,
		Pricing:         pricing.NewCalculator(cfg.Checkout),
		Adapters:        payment.NewRegistry(codConfirmer, cardConfirmer),
		Metrics:         checkoutMetrics,
		Logger:          logg,
		ResetOnContinue: cfg.Checkout.ResetOnContinue,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			Redis:           redisPinger,
			CheckoutService: checkoutService,
			CardConfirmer:   cardConfirmer,
			StripeClient:    stripePayments,
			Metrics:         registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

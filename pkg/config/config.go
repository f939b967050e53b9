package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "RIGHTSTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	Redis         RedisConfig
	Stripe        StripeConfig
	Checkout      CheckoutConfig
	PaymentIntent PaymentIntentConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RIGHTSTORE_APP_ENV" default:"dev"`
	Port         string `envconfig:"RIGHTSTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RIGHTSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RIGHTSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional; with no URL or address the API falls back to the
// in-process session store.
type RedisConfig struct {
	URL          string        `envconfig:"RIGHTSTORE_REDIS_URL"`
	Address      string        `envconfig:"RIGHTSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"RIGHTSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"RIGHTSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RIGHTSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RIGHTSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RIGHTSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RIGHTSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RIGHTSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint is configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type StripeConfig struct {
	APIKey string `envconfig:"RIGHTSTORE_STRIPE_API_KEY"`
	Env    string `envconfig:"RIGHTSTORE_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type CheckoutConfig struct {
	ShippingFee       decimal.Decimal `envconfig:"RIGHTSTORE_CHECKOUT_SHIPPING_FEE" default:"5"`
	ShippingThreshold decimal.Decimal `envconfig:"RIGHTSTORE_CHECKOUT_SHIPPING_THRESHOLD" default:"10"`
	CouponThreshold   decimal.Decimal `envconfig:"RIGHTSTORE_CHECKOUT_COUPON_THRESHOLD" default:"50"`
	CODDelay          time.Duration   `envconfig:"RIGHTSTORE_CHECKOUT_COD_DELAY" default:"4s"`
	ResetOnContinue   bool            `envconfig:"RIGHTSTORE_CHECKOUT_RESET_ON_CONTINUE" default:"false"`
	SessionTTL        time.Duration   `envconfig:"RIGHTSTORE_CHECKOUT_SESSION_TTL" default:"30m"`
}

func (c CheckoutConfig) validate() error {
	if c.ShippingFee.IsNegative() {
		return fmt.Errorf("shipping fee must not be negative")
	}
	if !c.ShippingThreshold.IsPositive() {
		return fmt.Errorf("shipping threshold must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	return nil
}

type PaymentIntentConfig struct {
	EndpointURL    string        `envconfig:"RIGHTSTORE_PAYMENT_INTENT_URL" default:"http://localhost:8080"`
	Currency       string        `envconfig:"RIGHTSTORE_PAYMENT_CURRENCY" default:"usd"`
	RequestTimeout time.Duration `envconfig:"RIGHTSTORE_PAYMENT_INTENT_TIMEOUT" default:"10s"`
}

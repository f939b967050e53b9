package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records checkout flow and payment adapter outcomes.
type CheckoutMetrics struct {
	transitions *prometheus.CounterVec
	attempts    *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_transitions_total",
		Help: "Applied checkout state transitions by event.",
	}, []string{"event"})
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_attempts_total",
		Help: "Payment confirmation attempts by method.",
	}, []string{"method"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_failures_total",
		Help: "Failed payment confirmations by method and reason.",
	}, []string{"method", "reason"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_confirm_duration_seconds",
		Help:    "Duration of payment confirmations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	reg.MustRegister(transitions, attempts, failures, duration)
	return &CheckoutMetrics{
		transitions: transitions,
		attempts:    attempts,
		failures:    failures,
		duration:    duration,
	}
}

// IncTransition counts an applied state transition.
func (c *CheckoutMetrics) IncTransition(event string) {
	if c == nil || c.transitions == nil {
		return
	}
	c.transitions.WithLabelValues(event).Inc()
}

// IncAttempt counts a payment confirmation attempt.
func (c *CheckoutMetrics) IncAttempt(method string) {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues(method).Inc()
}

// IncFailure counts a failed payment confirmation.
func (c *CheckoutMetrics) IncFailure(method, reason string) {
	if c == nil || c.failures == nil {
		return
	}
	c.failures.WithLabelValues(method, reason).Inc()
}

// ObserveConfirmDuration records how long a confirmation took.
func (c *CheckoutMetrics) ObserveConfirmDuration(method string, d time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(method).Observe(d.Seconds())
}

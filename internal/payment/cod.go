package payment

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"

	"github.com/kishanta/rightstore-backend/pkg/enums"
	"github.com/kishanta/rightstore-backend/pkg/logger"
)

// ProgressNotifier is the "notify the buyer, wait, then proceed" primitive
// the cash-on-delivery flow needs. The UI renders it as a timed progress
// dialog; server-side it is a log line.
type ProgressNotifier interface {
	Notify(ctx context.Context, message string, wait time.Duration)
}

// LogNotifier reports progress through the structured logger.
type LogNotifier struct {
	logg *logger.Logger
}

// NewLogNotifier builds a notifier backed by the service logger.
func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (n *LogNotifier) Notify(ctx context.Context, message string, wait time.Duration) {
	if n == nil || n.logg == nil {
		return
	}
	ctx = n.logg.WithField(ctx, "wait_ms", wait.Milliseconds())
	n.logg.Info(ctx, message)
}

// CODConfirmer settles cash-on-delivery orders: it holds for the configured
// processing delay and then succeeds unconditionally. This variant has no
// failure path.
type CODConfirmer struct {
	delay    time.Duration
	notifier ProgressNotifier
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewCODConfirmer builds the cash-on-delivery adapter.
func NewCODConfirmer(delay time.Duration, notifier ProgressNotifier) *CODConfirmer {
	return &CODConfirmer{
		delay:    delay,
		notifier: notifier,
		sleep:    sleepContext,
	}
}

func (c *CODConfirmer) Method() enums.PaymentMethod {
	return enums.PaymentMethodCOD
}

func (c *CODConfirmer) Confirm(ctx context.Context, input ConfirmInput) (*Receipt, error) {
	if c.notifier != nil {
		c.notifier.Notify(ctx, "processing cash-on-delivery payment", c.delay)
	}
	if err := c.sleep(ctx, c.delay); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cod processing interrupted")
	}
	return &Receipt{
		Method:    enums.PaymentMethodCOD,
		Reference: fmt.Sprintf("cod-%s", input.SessionID),
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

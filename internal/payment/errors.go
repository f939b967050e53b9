package payment

import "errors"

// Sentinel failure kinds for card confirmation. Handlers and metrics branch
// on these with errors.Is; the coded wrapper on top carries the HTTP shape.
var (
	// ErrAdapterNotReady means the provider client or its collaborators were
	// never initialized. Surfaced to the caller instead of silently dropping
	// the submission.
	ErrAdapterNotReady = errors.New("payment adapter not ready")

	// ErrTokenRequest means the authorization token endpoint failed or the
	// response carried no token.
	ErrTokenRequest = errors.New("payment token request failed")

	// ErrPaymentConfirmation means the provider declined the card or ended
	// in a non-success status. The buyer may edit the fields and retry.
	ErrPaymentConfirmation = errors.New("payment confirmation failed")
)

// FailureReason maps a confirmation error onto a stable metrics label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrAdapterNotReady):
		return "adapter_not_ready"
	case errors.Is(err, ErrTokenRequest):
		return "token_request"
	case errors.Is(err, ErrPaymentConfirmation):
		return "confirmation"
	default:
		return "other"
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kishanta/rightstore-backend/api/responses"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
	"github.com/kishanta/rightstore-backend/pkg/logger"
)

// SessionHeader carries the checkout session id issued at session creation.
const SessionHeader = "X-Checkout-Session"

type sessionIDKey struct{}

// CheckoutSession requires a well-formed session id header and puts the
// parsed id on the request context. Existence is checked by the service when
// it loads the session.
func CheckoutSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(SessionHeader)
			if raw == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "missing "+SessionHeader+" header"))
				return
			}
			sessionID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout session id"))
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session id stored by CheckoutSession.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(uuid.UUID)
	return id, ok
}

package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kishanta/rightstore-backend/api/middleware"
	"github.com/kishanta/rightstore-backend/api/responses"
	checkoutsvc "github.com/kishanta/rightstore-backend/internal/checkout"
	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
	"github.com/kishanta/rightstore-backend/pkg/logger"
)

// CartItemIncrease bumps the quantity of one line item.
func CartItemIncrease(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartItemHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID, itemID int64) (*checkoutsvc.Session, error) {
		return svc.IncreaseItem(ctx, sessionID, itemID)
	})
}

// CartItemDecrease lowers the quantity of one line item, removing it at zero.
func CartItemDecrease(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartItemHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID, itemID int64) (*checkoutsvc.Session, error) {
		return svc.DecreaseItem(ctx, sessionID, itemID)
	})
}

// CartItemRemove drops a line item regardless of quantity.
func CartItemRemove(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartItemHandler(svc, logg, func(ctx context.Context, svc checkoutsvc.Service, sessionID uuid.UUID, itemID int64) (*checkoutsvc.Session, error) {
		return svc.RemoveItem(ctx, sessionID, itemID)
	})
}

func cartItemHandler(
	svc checkoutsvc.Service,
	logg *logger.Logger,
	op func(context.Context, checkoutsvc.Service, uuid.UUID, int64) (*checkoutsvc.Session, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "checkout session missing"))
			return
		}

		itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		session, err := op(r.Context(), svc, sessionID, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(session, svc.Quote(session.Items)))
	}
}

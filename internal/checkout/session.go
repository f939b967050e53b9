package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kishanta/rightstore-backend/internal/cart"
	"github.com/kishanta/rightstore-backend/pkg/enums"
	"github.com/kishanta/rightstore-backend/pkg/types"
)

// Session is the whole state of one checkout flow. Every mutation replaces
// the stored snapshot; nothing outside the session store holds cart or
// address data.
type Session struct {
	ID            uuid.UUID              `json:"id"`
	Step          enums.CheckoutStep     `json:"step"`
	Items         []cart.LineItem        `json:"items"`
	Address       *types.ShippingAddress `json:"address,omitempty"`
	PaymentMethod enums.PaymentMethod    `json:"payment_method"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// NewSession starts a session in the Cart step with the seeded cart.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Step:      enums.CheckoutStepCart,
		Items:     cart.DefaultItems(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store persists checkout sessions. Sessions are ephemeral: implementations
// expire them by TTL and never write them to durable storage.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, session *Session) error
}

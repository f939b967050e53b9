package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/kishanta/rightstore-backend/pkg/errors"
)

// MemoryStore keeps sessions in process memory. Used for tests and
// redis-less development; a restart discards every session, which matches
// the session lifetime contract.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[uuid.UUID]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore builds an in-memory store with the given session TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: map[uuid.UUID]memoryEntry{},
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(ctx context.Context, session *Session) error {
	return m.Save(ctx, session)
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || m.now().After(entry.expiresAt) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	copied := entry.session
	return &copied, nil
}

func (m *MemoryStore) Save(_ context.Context, session *Session) error {
	if session == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "session is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = memoryEntry{
		session:   *session,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

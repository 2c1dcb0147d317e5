package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the persisted lifecycle state of a Session row: a row
// only ever moves from active to closed.
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionClosed SessionStatus = "closed"
)

// Session is one SSH attachment lifetime against a Connection.
type Session struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ConnectionID uuid.UUID
	Status       SessionStatus
	CreatedAt    time.Time
	LastActivity time.Time
}

// IsActive reports whether the persisted row still claims to be live.
// It does not check whether the session also exists in the in-memory
// registry — callers needing that must consult sessionmgr.Manager.
func (s *Session) IsActive() bool {
	return s.Status == SessionActive
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Connection is a saved SSH destination a user can open sessions against.
type Connection struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Host           string
	Port           int32
	Username       string
	SSHKeyID       *uuid.UUID
	StartupCommand *string
	CreatedAt      time.Time
}

// Package domain contains the core row types shared by the store and the
// RPC services.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator-provisioned account. There is no self-service signup;
// accounts are created through the CLI.
type User struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}

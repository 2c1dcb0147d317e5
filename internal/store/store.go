// Package store defines the persistence contract for hive-server and a
// SQLite-backed implementation of it.
package store

import (
	"context"

	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/google/uuid"
)

// Repository is the persistence interface every RPC service depends on.
// It never blocks on network I/O to the remote SSH hosts themselves —
// only on the local relational store.
type Repository interface {
	Ping(ctx context.Context) error
	Close() error

	CreateUser(ctx context.Context, username string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)

	CreateAPIKey(ctx context.Context, userID uuid.UUID, name, plaintextKey string) (*domain.ApiKey, error)
	ValidateAPIKey(ctx context.Context, plaintextKey string) (*domain.ApiKey, *domain.User, error)
	ListAPIKeysForUser(ctx context.Context, userID uuid.UUID) ([]*domain.ApiKey, error)
	RevokeAPIKey(ctx context.Context, plaintextKey string) (bool, error)
	RevokeAPIKeyByID(ctx context.Context, id uuid.UUID) (bool, error)

	CreateConnection(ctx context.Context, c *domain.Connection) (*domain.Connection, error)
	FindConnectionByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error)
	ListConnectionsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Connection, error)
	UpdateConnection(ctx context.Context, c *domain.Connection) (*domain.Connection, error)
	DeleteConnection(ctx context.Context, id uuid.UUID) (bool, error)

	CreateSession(ctx context.Context, userID, connectionID uuid.UUID) (*domain.Session, error)
	FindSessionByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	ListSessionsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	ListActiveSessionsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	ListAllActiveSessions(ctx context.Context) ([]*domain.Session, error)
	UpdateSessionStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (bool, error)
	UpdateSessionActivity(ctx context.Context, id uuid.UUID) (bool, error)
	CloseSession(ctx context.Context, id uuid.UUID) (bool, error)

	AppendScrollback(ctx context.Context, sessionID uuid.UUID, data []byte) error
	GetScrollback(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
	GetScrollbackFromOffset(ctx context.Context, sessionID uuid.UUID, offset int) ([]byte, error)
	GetScrollbackSize(ctx context.Context, sessionID uuid.UUID) (int, error)
	DeleteScrollbackForSession(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

package sessionmgr

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexmakeev/hive-server/internal/apperr"
	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/sshtransport"
	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/google/uuid"
)

func newTestManager(t *testing.T) (*Manager, store.Repository) {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "hive.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	cfg := sshtransport.Config{
		DialTimeout:       200 * time.Millisecond,
		InactivityTimeout: time.Hour,
		KeepaliveInterval: time.Minute,
		KeepaliveMax:      3,
	}
	return New(repo, cfg, 16), repo
}

func mustUserAndConnection(t *testing.T, repo store.Repository) (*domain.User, *domain.Connection) {
	t.Helper()
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, "owner")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	conn, err := repo.CreateConnection(ctx, &domain.Connection{
		UserID: user.ID, Name: "unreachable", Host: "127.0.0.1", Port: 1, Username: "root",
	})
	if err != nil {
		t.Fatalf("CreateConnection: %v", err)
	}
	return user, conn
}

func TestCreateSessionRejectsUnknownConnection(t *testing.T) {
	mgr, _ := newTestManager(t)
	_, err := mgr.CreateSession(context.Background(), uuid.New(), uuid.New(), 80, 24, "pw")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestCreateSessionRejectsWrongOwner(t *testing.T) {
	mgr, repo := newTestManager(t)
	_, conn := mustUserAndConnection(t, repo)

	_, err := mgr.CreateSession(context.Background(), uuid.New(), conn.ID, 80, 24, "pw")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("expected Unauthorized, got %v", err)
	}
}

func TestCreateSessionWrapsDialFailureAsSshError(t *testing.T) {
	mgr, repo := newTestManager(t)
	user, conn := mustUserAndConnection(t, repo)

	_, err := mgr.CreateSession(context.Background(), user.ID, conn.ID, 80, 24, "pw")
	if apperr.KindOf(err) != apperr.SshError {
		t.Errorf("expected SshError for an unreachable host, got %v", err)
	}
}

func TestCloseSessionRejectsUnknownSession(t *testing.T) {
	mgr, _ := newTestManager(t)
	err := mgr.CloseSession(context.Background(), uuid.New(), uuid.New())
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestAttachToSessionRejectsInactiveSession(t *testing.T) {
	mgr, repo := newTestManager(t)
	user, conn := mustUserAndConnection(t, repo)

	// CreateSession fails the dial but still creates then closes the row;
	// attaching afterward must report it is not active.
	_, _ = mgr.CreateSession(context.Background(), user.ID, conn.ID, 80, 24, "pw")

	sessions, err := repo.ListSessionsForUser(context.Background(), user.ID)
	if err != nil || len(sessions) == 0 {
		t.Fatalf("expected a session row to exist, err=%v len=%d", err, len(sessions))
	}

	_, _, err = mgr.AttachToSession(context.Background(), sessions[0].ID, user.ID)
	if apperr.KindOf(err) != apperr.SessionNotActive {
		t.Errorf("expected SessionNotActive, got %v", err)
	}
}

package scrollback

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/store"
)

func newTestLog(t *testing.T) (*Log, store.Repository) {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "hive.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	user, err := repo.CreateUser(ctx, "scrollback-tester")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	conn, err := repo.CreateConnection(ctx, &domain.Connection{
		UserID: user.ID, Name: "box", Host: "h", Port: 22, Username: "root",
	})
	if err != nil {
		t.Fatalf("CreateConnection: %v", err)
	}
	sess, err := repo.CreateSession(ctx, user.ID, conn.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	return New(repo, sess.ID), repo
}

func TestLogAppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLog(t)

	if err := log.Append(ctx, []byte("one ")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append(ctx, []byte("two")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "one two" {
		t.Errorf("expected %q, got %q", "one two", got)
	}
}

func TestLogAppendEmptyIsNoOp(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLog(t)

	if err := log.Append(ctx, nil); err != nil {
		t.Fatalf("Append(nil): %v", err)
	}

	size, err := log.Size(ctx)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 0 {
		t.Errorf("expected size 0 after appending nothing, got %d", size)
	}
}

func TestLogReadFromOffset(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLog(t)

	if err := log.Append(ctx, []byte("abcdefgh")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := log.ReadFromOffset(ctx, 3)
	if err != nil {
		t.Fatalf("ReadFromOffset: %v", err)
	}
	if string(got) != "defgh" {
		t.Errorf("expected %q, got %q", "defgh", got)
	}
}

func TestLogDelete(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLog(t)

	if err := log.Append(ctx, []byte("gone soon")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	size, err := log.Size(ctx)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 0 {
		t.Errorf("expected size 0 after Delete, got %d", size)
	}
}

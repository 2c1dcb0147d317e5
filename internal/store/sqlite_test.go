package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alexmakeev/hive-server/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "hive.db")
	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreateSession(t *testing.T, s *SQLiteStore) *domain.Session {
	t.Helper()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "tester")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	conn, err := s.CreateConnection(ctx, &domain.Connection{
		UserID:   user.ID,
		Name:     "box",
		Host:     "example.invalid",
		Port:     22,
		Username: "root",
	})
	if err != nil {
		t.Fatalf("CreateConnection: %v", err)
	}

	sess, err := s.CreateSession(ctx, user.ID, conn.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return sess
}

func TestAppendScrollbackWithinOneChunk(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := mustCreateSession(t, s)

	if err := s.AppendScrollback(ctx, sess.ID, []byte("hello ")); err != nil {
		t.Fatalf("AppendScrollback: %v", err)
	}
	if err := s.AppendScrollback(ctx, sess.ID, []byte("world")); err != nil {
		t.Fatalf("AppendScrollback: %v", err)
	}

	got, err := s.GetScrollback(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetScrollback: %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}

func TestAppendScrollbackSpansMultipleChunks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := mustCreateSession(t, s)

	// One byte over a chunk boundary: domain.ChunkMax + 1 bytes total,
	// written in a single call so the append logic must split it itself.
	payload := bytes.Repeat([]byte{'a'}, domain.ChunkMax+1)
	if err := s.AppendScrollback(ctx, sess.ID, payload); err != nil {
		t.Fatalf("AppendScrollback: %v", err)
	}

	size, err := s.GetScrollbackSize(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetScrollbackSize: %v", err)
	}
	if size != len(payload) {
		t.Errorf("expected size %d, got %d", len(payload), size)
	}

	got, err := s.GetScrollback(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetScrollback: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("round-tripped scrollback does not match what was appended")
	}
}

func TestGetScrollbackFromOffsetSkipsWholeChunks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := mustCreateSession(t, s)

	payload := bytes.Repeat([]byte{'b'}, domain.ChunkMax+100)
	if err := s.AppendScrollback(ctx, sess.ID, payload); err != nil {
		t.Fatalf("AppendScrollback: %v", err)
	}

	offset := domain.ChunkMax + 10
	got, err := s.GetScrollbackFromOffset(ctx, sess.ID, offset)
	if err != nil {
		t.Fatalf("GetScrollbackFromOffset: %v", err)
	}
	want := payload[offset:]
	if !bytes.Equal(got, want) {
		t.Errorf("expected %d bytes from offset, got %d", len(want), len(got))
	}
}

func TestDeleteScrollbackForSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sess := mustCreateSession(t, s)

	if err := s.AppendScrollback(ctx, sess.ID, []byte("some output")); err != nil {
		t.Fatalf("AppendScrollback: %v", err)
	}

	deleted, err := s.DeleteScrollbackForSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("DeleteScrollbackForSession: %v", err)
	}
	if !deleted {
		t.Error("expected DeleteScrollbackForSession to report rows were deleted")
	}

	size, err := s.GetScrollbackSize(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetScrollbackSize: %v", err)
	}
	if size != 0 {
		t.Errorf("expected size 0 after delete, got %d", size)
	}
}

func TestValidateAPIKeyRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "keyholder")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	plaintext, err := domain.GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey: %v", err)
	}
	if _, err := s.CreateAPIKey(ctx, user.ID, "laptop", plaintext); err != nil {
		t.Fatalf("CreateAPIKey: %v", err)
	}

	key, gotUser, err := s.ValidateAPIKey(ctx, plaintext)
	if err != nil {
		t.Fatalf("ValidateAPIKey: %v", err)
	}
	if key == nil || gotUser == nil {
		t.Fatal("expected a matching key and user for a freshly created key")
	}
	if gotUser.ID != user.ID {
		t.Errorf("expected user %v, got %v", user.ID, gotUser.ID)
	}

	_, noUser, err := s.ValidateAPIKey(ctx, "hive_not-a-real-key")
	if err != nil {
		t.Fatalf("ValidateAPIKey: %v", err)
	}
	if noUser != nil {
		t.Error("expected no user for an unknown key")
	}
}

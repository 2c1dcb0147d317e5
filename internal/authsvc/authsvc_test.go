package authsvc

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/pb"
	"github.com/alexmakeev/hive-server/internal/store"
)

func newTestService(t *testing.T) (*Service, store.Repository) {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "hive.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return New(repo), repo
}

func TestValidateApiKeyValid(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	plaintext, err := domain.GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey: %v", err)
	}
	if _, err := repo.CreateAPIKey(ctx, user.ID, "laptop", plaintext); err != nil {
		t.Fatalf("CreateAPIKey: %v", err)
	}

	resp, err := svc.ValidateApiKey(ctx, &pb.ValidateApiKeyRequest{ApiKey: plaintext})
	if err != nil {
		t.Fatalf("ValidateApiKey: %v", err)
	}
	if !resp.GetValid() {
		t.Error("expected a freshly created key to validate")
	}
	if resp.GetUsername() != "alice" {
		t.Errorf("expected username alice, got %q", resp.GetUsername())
	}
}

func TestValidateApiKeyUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.ValidateApiKey(context.Background(), &pb.ValidateApiKeyRequest{ApiKey: "hive_nope"})
	if err != nil {
		t.Fatalf("ValidateApiKey returned an error for an unknown key: %v", err)
	}
	if resp.GetValid() {
		t.Error("expected an unknown key to be reported as invalid, not errored")
	}
}

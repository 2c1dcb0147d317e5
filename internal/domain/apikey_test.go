package domain

import (
	"strings"
	"testing"
)

func TestGenerateAPIKeyHasPrefix(t *testing.T) {
	key, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey returned error: %v", err)
	}
	if !strings.HasPrefix(key, ApiKeyPrefix) {
		t.Errorf("expected key to start with %q, got %q", ApiKeyPrefix, key)
	}
	if len(key) != len(ApiKeyPrefix)+64 {
		t.Errorf("expected key length %d, got %d", len(ApiKeyPrefix)+64, len(key))
	}
}

func TestGenerateAPIKeyIsRandom(t *testing.T) {
	a, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey returned error: %v", err)
	}
	b, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey returned error: %v", err)
	}
	if a == b {
		t.Error("expected two generated keys to differ")
	}
}

func TestHashAPIKeyIsDeterministic(t *testing.T) {
	key := "hive_deadbeef"
	if HashAPIKey(key) != HashAPIKey(key) {
		t.Error("expected HashAPIKey to be deterministic for the same input")
	}
}

func TestHashAPIKeyDiffersForDifferentKeys(t *testing.T) {
	if HashAPIKey("hive_one") == HashAPIKey("hive_two") {
		t.Error("expected different keys to hash differently")
	}
}

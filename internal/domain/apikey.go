package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// ApiKeyPrefix identifies a hive API key at a glance; the rest is 32
// random bytes hex-encoded.
const ApiKeyPrefix = "hive_"

// ApiKey is a bearer credential for the Auth service. The plaintext key
// is returned to the operator exactly once, at creation time; only its
// hash is persisted.
type ApiKey struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	KeyHash    string
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// GenerateAPIKey returns a new plaintext key in the "hive_<64 hex>" form.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return ApiKeyPrefix + hex.EncodeToString(buf), nil
}

// HashAPIKey returns the hex-encoded SHA-256 digest of a plaintext key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

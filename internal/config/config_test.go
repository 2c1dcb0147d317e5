package config

import (
	"os"
	"testing"
)

func clearHiveEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "HIVE_LISTEN", "HIVE_HEALTH_ADDR",
		"HIVE_SSH_DIAL_TIMEOUT", "HIVE_SSH_INACTIVITY_TIMEOUT",
		"HIVE_SSH_KEEPALIVE_INTERVAL", "HIVE_SSH_KEEPALIVE_MAX",
		"HIVE_BROADCAST_BUFFER",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	clearHiveEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "[::1]:50051" {
		t.Errorf("unexpected default listen addr: %q", cfg.ListenAddr)
	}
	if cfg.Broadcast.BufferCapacity != 1024 {
		t.Errorf("unexpected default buffer capacity: %d", cfg.Broadcast.BufferCapacity)
	}
	if cfg.SSH.KeepaliveMax != 3 {
		t.Errorf("unexpected default keepalive max: %d", cfg.SSH.KeepaliveMax)
	}
}

func TestLoadHonorsEnvOverrides(t *testing.T) {
	clearHiveEnv(t)
	os.Setenv("HIVE_LISTEN", "0.0.0.0:9999")
	defer os.Unsetenv("HIVE_LISTEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9999" {
		t.Errorf("expected overridden listen addr, got %q", cfg.ListenAddr)
	}
}

func TestValidateRejectsEmptyListenAddr(t *testing.T) {
	cfg := &Config{DatabaseURL: "./data/hive.db", ListenAddr: "", Broadcast: BroadcastConfig{BufferCapacity: 1}, SSH: SSHConfig{KeepaliveMax: 1}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an empty listen address")
	}
}

func TestValidateRejectsNonPositiveBufferCapacity(t *testing.T) {
	cfg := &Config{DatabaseURL: "./data/hive.db", ListenAddr: "addr", Broadcast: BroadcastConfig{BufferCapacity: 0}, SSH: SSHConfig{KeepaliveMax: 1}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a non-positive buffer capacity")
	}
}

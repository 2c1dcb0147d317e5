// Package config provides application configuration.
//
// Configuration is loaded from environment variables with sensible
// defaults, matching the CLI flags in cmd/hive-server (flags win over the
// environment, the environment wins over the default).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SSHConfig holds the SSH Transport Adapter's timing parameters.
type SSHConfig struct {
	DialTimeout       time.Duration // TCP dial + handshake timeout
	InactivityTimeout time.Duration // connection is dropped if idle this long
	KeepaliveInterval time.Duration // interval between keepalive channel requests
	KeepaliveMax      int           // consecutive missed keepalives before giving up
}

// BroadcastConfig holds the Broadcast Hub's sizing.
type BroadcastConfig struct {
	BufferCapacity int // per-subscriber bounded channel size
}

// Config holds all application configuration.
type Config struct {
	DatabaseURL string // DSN / file path for the relational store
	ListenAddr  string // gRPC listen address, e.g. "[::1]:50051"
	HealthAddr  string // HTTP /healthz /readyz listen address

	SSH       SSHConfig
	Broadcast BroadcastConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", "./data/hive.db"),
		ListenAddr:  getEnv("HIVE_LISTEN", "[::1]:50051"),
		HealthAddr:  getEnv("HIVE_HEALTH_ADDR", ":8089"),

		SSH: SSHConfig{
			DialTimeout:       getEnvDuration("HIVE_SSH_DIAL_TIMEOUT", 10*time.Second),
			InactivityTimeout: getEnvDuration("HIVE_SSH_INACTIVITY_TIMEOUT", time.Hour),
			KeepaliveInterval: getEnvDuration("HIVE_SSH_KEEPALIVE_INTERVAL", 30*time.Second),
			KeepaliveMax:      getEnvInt("HIVE_SSH_KEEPALIVE_MAX", 3),
		},
		Broadcast: BroadcastConfig{
			BufferCapacity: getEnvInt("HIVE_BROADCAST_BUFFER", 1024),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("HIVE_LISTEN cannot be empty")
	}
	if c.Broadcast.BufferCapacity <= 0 {
		return fmt.Errorf("HIVE_BROADCAST_BUFFER must be > 0")
	}
	if c.SSH.KeepaliveMax <= 0 {
		return fmt.Errorf("HIVE_SSH_KEEPALIVE_MAX must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

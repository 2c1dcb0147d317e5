// Package reconcile sweeps for sessions left marked active by a previous,
// uncleanly terminated process. The in-memory sessionmgr.Manager registry
// always starts empty, so any row still "active" at boot has no live SSH
// connection behind it and must be closed.
package reconcile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/google/uuid"
)

const (
	maxRetries = 3
	baseDelay  = 100 * time.Millisecond
)

// Orphans marks every row the store still reports as active as closed. It
// runs once at startup, not on a ticker: the condition it corrects (a
// crash between process restarts) can only exist at boot.
func Orphans(ctx context.Context, repo store.Repository) error {
	sessions, err := repo.ListAllActiveSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	slog.Info("reconcile: found orphaned active sessions", "count", len(sessions))

	for _, sess := range sessions {
		if err := closeWithRetry(ctx, repo, sess.ID); err != nil {
			slog.Warn("reconcile: failed to close orphaned session", "session_id", sess.ID, "error", err)
			continue
		}
		slog.Info("reconcile: closed orphaned session", "session_id", sess.ID, "user_id", sess.UserID)
	}

	return nil
}

// closeWithRetry handles SQLITE_BUSY the same way container.ttl's retry
// helpers did: short exponential backoff, bounded attempts.
func closeWithRetry(ctx context.Context, repo store.Repository, id uuid.UUID) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := repo.CloseSession(ctx, id)
		if err == nil {
			return nil
		}
		lastErr = err

		if !strings.Contains(err.Error(), "database is locked") && !strings.Contains(err.Error(), "SQLITE_BUSY") {
			return err
		}
		if attempt < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<attempt)
			slog.Debug("reconcile: session close failed with SQLITE_BUSY, retrying", "session_id", id, "attempt", attempt+1, "delay", delay)
			time.Sleep(delay)
		}
	}
	return lastErr
}

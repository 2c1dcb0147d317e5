// Package scrollback is the append-only byte history for a session. It is a
// thin layer over store.Repository: the chunking itself lives in the store
// (it's a storage-layout concern), this package is the seam sessionmgr
// calls through so it does not have to know about chunk boundaries.
package scrollback

import (
	"context"
	"fmt"

	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/google/uuid"
)

// Log is the append-only scrollback for one session.
type Log struct {
	repo      store.Repository
	sessionID uuid.UUID
}

// New returns a Log bound to a single session's scrollback rows.
func New(repo store.Repository, sessionID uuid.UUID) *Log {
	return &Log{repo: repo, sessionID: sessionID}
}

// Append persists data at the end of the scrollback, growing or adding
// chunks as needed.
func (l *Log) Append(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := l.repo.AppendScrollback(ctx, l.sessionID, data); err != nil {
		return fmt.Errorf("append scrollback: %w", err)
	}
	return nil
}

// ReadAll returns the full scrollback from the beginning.
func (l *Log) ReadAll(ctx context.Context) ([]byte, error) {
	data, err := l.repo.GetScrollback(ctx, l.sessionID)
	if err != nil {
		return nil, fmt.Errorf("read scrollback: %w", err)
	}
	return data, nil
}

// ReadFromOffset returns the scrollback starting at the given byte offset,
// skipping whole chunks before it and slicing into the one that straddles
// the boundary.
func (l *Log) ReadFromOffset(ctx context.Context, offset int) ([]byte, error) {
	data, err := l.repo.GetScrollbackFromOffset(ctx, l.sessionID, offset)
	if err != nil {
		return nil, fmt.Errorf("read scrollback from offset %d: %w", offset, err)
	}
	return data, nil
}

// Size returns the total number of scrollback bytes recorded so far.
func (l *Log) Size(ctx context.Context) (int, error) {
	size, err := l.repo.GetScrollbackSize(ctx, l.sessionID)
	if err != nil {
		return 0, fmt.Errorf("scrollback size: %w", err)
	}
	return size, nil
}

// Delete removes all scrollback rows for the session, e.g. once a closed
// session is reaped.
func (l *Log) Delete(ctx context.Context) error {
	if _, err := l.repo.DeleteScrollbackForSession(ctx, l.sessionID); err != nil {
		return fmt.Errorf("delete scrollback: %w", err)
	}
	return nil
}

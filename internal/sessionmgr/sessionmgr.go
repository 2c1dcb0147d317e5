// Package sessionmgr owns the registry of live SSH-backed sessions: dialing
// out, fanning output through a broadcast.Hub, persisting it to scrollback,
// and tearing everything down on close. It is the in-memory counterpart to
// the sessions table store.Repository persists.
package sessionmgr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/alexmakeev/hive-server/internal/apperr"
	"github.com/alexmakeev/hive-server/internal/broadcast"
	"github.com/alexmakeev/hive-server/internal/scrollback"
	"github.com/alexmakeev/hive-server/internal/sshtransport"
	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/google/uuid"
)

// readBufferSize is the chunk size used when pumping terminal output into
// the broadcast hub and scrollback log.
const readBufferSize = 4096

// ActiveSession is one live SSH attachment: the dialed terminal, its
// output fan-out, and the append-only history of everything it has
// produced so far.
type ActiveSession struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ConnectionID uuid.UUID

	terminal   *sshtransport.Terminal
	hub        *broadcast.Hub
	scrollback *scrollback.Log

	mu     sync.Mutex
	closed bool
}

// Write sends input to the remote shell.
func (a *ActiveSession) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.terminal.Write(p)
}

// Resize changes the remote PTY's dimensions.
func (a *ActiveSession) Resize(cols, rows int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.terminal.Resize(cols, rows)
}

// Subscribe attaches a new output listener to this session.
func (a *ActiveSession) Subscribe() *broadcast.Subscription {
	return a.hub.Subscribe()
}

func (a *ActiveSession) pump(ctx context.Context) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := a.terminal.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			a.hub.Publish(chunk)
			if appendErr := a.scrollback.Append(ctx, chunk); appendErr != nil {
				slog.Warn("sessionmgr: failed to persist scrollback chunk", "session_id", a.ID, "error", appendErr)
			}
		}
		if err != nil {
			if err != io.EOF {
				slog.Info("sessionmgr: remote read ended", "session_id", a.ID, "error", err)
			}
			return
		}
	}
}

func (a *ActiveSession) close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	a.hub.Close()
	return a.terminal.Close()
}

// Manager tracks every ActiveSession keyed by its session ID.
type Manager struct {
	repo        store.Repository
	cfg         sshtransport.Config
	hubCapacity int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*ActiveSession
}

// New creates an empty Manager. hubCapacity sizes every session's
// broadcast.Hub subscriber buffers.
func New(repo store.Repository, cfg sshtransport.Config, hubCapacity int) *Manager {
	if hubCapacity <= 0 {
		hubCapacity = broadcast.DefaultBufferCapacity
	}
	return &Manager{
		repo:        repo,
		cfg:         cfg,
		hubCapacity: hubCapacity,
		sessions:    make(map[uuid.UUID]*ActiveSession),
	}
}

// CreateSession dials the connection's host over SSH, starts a shell at the
// requested size, and registers the resulting ActiveSession. The caller
// must already have verified that connectionID belongs to userID; it is
// re-checked here against the store as a second line of defense.
func (m *Manager) CreateSession(ctx context.Context, userID, connectionID uuid.UUID, cols, rows int, password string) (*ActiveSession, error) {
	conn, err := m.repo.FindConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreError, "load connection", err)
	}
	if conn == nil {
		return nil, apperr.New(apperr.NotFound, "connection not found")
	}
	if conn.UserID != userID {
		return nil, apperr.New(apperr.Unauthorized, "connection belongs to a different user")
	}

	row, err := m.repo.CreateSession(ctx, userID, connectionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreError, "create session row", err)
	}

	addr := fmt.Sprintf("%s:%d", conn.Host, conn.Port)
	term, err := sshtransport.Dial(addr, conn.Username, password, cols, rows, m.cfg)
	if err != nil {
		if _, closeErr := m.repo.CloseSession(ctx, row.ID); closeErr != nil {
			slog.Warn("sessionmgr: failed to mark session closed after dial failure", "session_id", row.ID, "error", closeErr)
		}
		return nil, apperr.Wrap(apperr.SshError, "connect to "+addr, err)
	}

	active := &ActiveSession{
		ID:           row.ID,
		UserID:       userID,
		ConnectionID: connectionID,
		terminal:     term,
		hub:          broadcast.New(m.hubCapacity),
		scrollback:   scrollback.New(m.repo, row.ID),
	}

	m.mu.Lock()
	m.sessions[row.ID] = active
	m.mu.Unlock()

	go active.pump(context.Background())

	slog.Info("sessionmgr: session created", "session_id", row.ID, "user_id", userID, "connection_id", connectionID)
	return active, nil
}

// GetSession returns the in-memory session if it is still registered.
func (m *Manager) GetSession(id uuid.UUID) *ActiveSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// CloseSession tears down the live terminal (if any), updates the
// persisted status, and removes the session from the registry. Ownership
// is verified against userID first.
func (m *Manager) CloseSession(ctx context.Context, id, userID uuid.UUID) error {
	row, err := m.repo.FindSessionByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "load session", err)
	}
	if row == nil {
		return apperr.New(apperr.NotFound, "session not found")
	}
	if row.UserID != userID {
		return apperr.New(apperr.Unauthorized, "session belongs to a different user")
	}

	m.mu.Lock()
	active := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if active != nil {
		if err := active.close(); err != nil {
			slog.Warn("sessionmgr: error closing terminal", "session_id", id, "error", err)
		}
	}

	if _, err := m.repo.CloseSession(ctx, id); err != nil {
		return apperr.Wrap(apperr.StoreError, "mark session closed", err)
	}

	slog.Info("sessionmgr: session closed", "session_id", id, "user_id", userID)
	return nil
}

// AttachToSession validates ownership and that the session is still active
// in the registry, then returns a new output subscription.
func (m *Manager) AttachToSession(ctx context.Context, id, userID uuid.UUID) (*ActiveSession, *broadcast.Subscription, error) {
	row, err := m.repo.FindSessionByID(ctx, id)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.StoreError, "load session", err)
	}
	if row == nil {
		return nil, nil, apperr.New(apperr.NotFound, "session not found")
	}
	if row.UserID != userID {
		return nil, nil, apperr.New(apperr.Unauthorized, "session belongs to a different user")
	}
	if !row.IsActive() {
		return nil, nil, apperr.New(apperr.SessionNotActive, "session is not active")
	}

	active := m.GetSession(id)
	if active == nil {
		return nil, nil, apperr.New(apperr.SessionNotActive, "session has no live connection")
	}

	return active, active.Subscribe(), nil
}

// AttachWithRecovery returns the scrollback recorded so far plus a live
// subscription in one call, so a reattaching client sees no gap between
// history and new output. When lastSeenOffset is non-nil, replay starts at
// that byte offset instead of from the beginning.
func (m *Manager) AttachWithRecovery(ctx context.Context, id, userID uuid.UUID, lastSeenOffset *int64) ([]byte, *broadcast.Subscription, error) {
	active, sub, err := m.AttachToSession(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	var history []byte
	if lastSeenOffset != nil {
		history, err = active.scrollback.ReadFromOffset(ctx, int(*lastSeenOffset))
	} else {
		history, err = active.scrollback.ReadAll(ctx)
	}
	if err != nil {
		sub.Unsubscribe()
		return nil, nil, err
	}

	return history, sub, nil
}

// GetScrollback verifies ownership of the session and returns its full
// recorded history.
func (m *Manager) GetScrollback(ctx context.Context, id, userID uuid.UUID) ([]byte, error) {
	if err := m.verifyOwnership(ctx, id, userID); err != nil {
		return nil, err
	}
	return scrollback.New(m.repo, id).ReadAll(ctx)
}

// GetScrollbackSize verifies ownership of the session and returns the
// number of scrollback bytes recorded so far.
func (m *Manager) GetScrollbackSize(ctx context.Context, id, userID uuid.UUID) (int, error) {
	if err := m.verifyOwnership(ctx, id, userID); err != nil {
		return 0, err
	}
	return scrollback.New(m.repo, id).Size(ctx)
}

// GetScrollbackFromOffset verifies ownership of the session and returns the
// scrollback recorded from the given byte offset onward.
func (m *Manager) GetScrollbackFromOffset(ctx context.Context, id, userID uuid.UUID, offset int) ([]byte, error) {
	if err := m.verifyOwnership(ctx, id, userID); err != nil {
		return nil, err
	}
	return scrollback.New(m.repo, id).ReadFromOffset(ctx, offset)
}

// verifyOwnership loads the session row and confirms it exists and belongs
// to userID, independent of whether it still has a live in-memory session.
func (m *Manager) verifyOwnership(ctx context.Context, id, userID uuid.UUID) error {
	row, err := m.repo.FindSessionByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "load session", err)
	}
	if row == nil {
		return apperr.New(apperr.NotFound, "session not found")
	}
	if row.UserID != userID {
		return apperr.New(apperr.Unauthorized, "session belongs to a different user")
	}
	return nil
}

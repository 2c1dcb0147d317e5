package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/shared"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository and applies the schema.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

// Migrate applies the schema. It is idempotent and safe to call on every
// startup as well as from the CLI's "migrate" subcommand.
func (s *SQLiteStore) Migrate() error {
	const schema = `
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS api_keys (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		key_hash TEXT NOT NULL UNIQUE,
		last_used_at INTEGER,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_api_keys_user ON api_keys(user_id);

	CREATE TABLE IF NOT EXISTS connections (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		host TEXT NOT NULL,
		port INTEGER NOT NULL,
		username TEXT NOT NULL,
		ssh_key_id TEXT,
		startup_command TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_connections_user ON connections(user_id);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		connection_id TEXT NOT NULL REFERENCES connections(id),
		status TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		last_activity INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);

	CREATE TABLE IF NOT EXISTS scrollback_chunks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		chunk_index INTEGER NOT NULL,
		data BLOB NOT NULL,
		created_at INTEGER NOT NULL,
		UNIQUE(session_id, chunk_index)
	);
	CREATE INDEX IF NOT EXISTS idx_scrollback_session ON scrollback_chunks(session_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// --- users -----------------------------------------------------------------

func (s *SQLiteStore) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{ID: uuid.New(), Username: username, CreatedAt: time.Now()}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)`,
		u.ID.String(), u.Username, u.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, created_at FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (s *SQLiteStore) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, created_at FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var id string
	var createdAt int64
	if err := row.Scan(&id, &u.Username, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	u.ID = parsed
	u.CreatedAt = time.Unix(createdAt, 0)
	return &u, nil
}

func scanUserRow(rows *sql.Rows) (*domain.User, error) {
	return scanUser(rows)
}

// --- api keys ----------------------------------------------------------------

func (s *SQLiteStore) CreateAPIKey(ctx context.Context, userID uuid.UUID, name, plaintextKey string) (*domain.ApiKey, error) {
	k := &domain.ApiKey{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		KeyHash:   domain.HashAPIKey(plaintextKey),
		CreatedAt: time.Now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO api_keys (id, user_id, name, key_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		k.ID.String(), k.UserID.String(), k.Name, k.KeyHash, k.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("create api key: %w", err)
	}
	return k, nil
}

func (s *SQLiteStore) ValidateAPIKey(ctx context.Context, plaintextKey string) (*domain.ApiKey, *domain.User, error) {
	hash := domain.HashAPIKey(plaintextKey)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, key_hash, last_used_at, created_at FROM api_keys WHERE key_hash = ?`, hash)

	key, err := scanAPIKey(row)
	if err != nil || key == nil {
		return nil, nil, err
	}

	user, err := s.FindUserByID(ctx, key.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("user not found for api key")
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE api_keys SET last_used_at = ? WHERE id = ?`, time.Now().Unix(), key.ID.String(),
	); err != nil {
		slog.Warn("failed to update api key last_used_at", "key_id", key.ID, "error", err)
	}

	return key, user, nil
}

func (s *SQLiteStore) ListAPIKeysForUser(ctx context.Context, userID uuid.UUID) ([]*domain.ApiKey, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, key_hash, last_used_at, created_at FROM api_keys WHERE user_id = ? ORDER BY created_at`,
		userID.String())
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	defer rows.Close()

	var out []*domain.ApiKey
	for rows.Next() {
		k, err := scanAPIKey(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) RevokeAPIKey(ctx context.Context, plaintextKey string) (bool, error) {
	hash := domain.HashAPIKey(plaintextKey)
	res, err := s.db.ExecContext(ctx, `DELETE FROM api_keys WHERE key_hash = ?`, hash)
	if err != nil {
		return false, fmt.Errorf("revoke api key: %w", err)
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (s *SQLiteStore) RevokeAPIKeyByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM api_keys WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("revoke api key by id: %w", err)
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func scanAPIKey(row rowScanner) (*domain.ApiKey, error) {
	var k domain.ApiKey
	var id, userID string
	var lastUsed sql.NullInt64
	var createdAt int64

	if err := row.Scan(&id, &userID, &k.Name, &k.KeyHash, &lastUsed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan api key: %w", err)
	}

	var err error
	if k.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse api key id: %w", err)
	}
	if k.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("parse api key user id: %w", err)
	}
	k.CreatedAt = time.Unix(createdAt, 0)
	if lastUsed.Valid {
		t := time.Unix(lastUsed.Int64, 0)
		k.LastUsedAt = &t
	}
	return &k, nil
}

// --- connections -------------------------------------------------------------

func (s *SQLiteStore) CreateConnection(ctx context.Context, c *domain.Connection) (*domain.Connection, error) {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO connections (id, user_id, name, host, port, username, ssh_key_id, startup_command, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.UserID.String(), c.Name, c.Host, c.Port, c.Username,
		uuidPtrToSQL(c.SSHKeyID), strPtrToSQL(c.StartupCommand), c.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) FindConnectionByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, host, port, username, ssh_key_id, startup_command, created_at
		 FROM connections WHERE id = ?`, id.String())
	return scanConnection(row)
}

func (s *SQLiteStore) ListConnectionsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Connection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, host, port, username, ssh_key_id, startup_command, created_at
		 FROM connections WHERE user_id = ? ORDER BY created_at`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	defer rows.Close()

	var out []*domain.Connection
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateConnection(ctx context.Context, c *domain.Connection) (*domain.Connection, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE connections SET name = ?, host = ?, port = ?, username = ?, ssh_key_id = ?, startup_command = ?
		 WHERE id = ?`,
		c.Name, c.Host, c.Port, c.Username, uuidPtrToSQL(c.SSHKeyID), strPtrToSQL(c.StartupCommand), c.ID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("update connection: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update connection rows affected: %w", err)
	}
	if rows == 0 {
		return nil, nil
	}
	return s.FindConnectionByID(ctx, c.ID)
}

func (s *SQLiteStore) DeleteConnection(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM connections WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("delete connection: %w", err)
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func scanConnection(row rowScanner) (*domain.Connection, error) {
	var c domain.Connection
	var id, userID string
	var sshKeyID, startupCommand sql.NullString
	var createdAt int64

	if err := row.Scan(&id, &userID, &c.Name, &c.Host, &c.Port, &c.Username, &sshKeyID, &startupCommand, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan connection: %w", err)
	}

	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse connection id: %w", err)
	}
	if c.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("parse connection user id: %w", err)
	}
	c.CreatedAt = time.Unix(createdAt, 0)
	if sshKeyID.Valid {
		parsed, err := uuid.Parse(sshKeyID.String)
		if err != nil {
			return nil, fmt.Errorf("parse connection ssh key id: %w", err)
		}
		c.SSHKeyID = &parsed
	}
	if startupCommand.Valid {
		c.StartupCommand = &startupCommand.String
	}
	return &c, nil
}

// --- sessions ----------------------------------------------------------------

func (s *SQLiteStore) CreateSession(ctx context.Context, userID, connectionID uuid.UUID) (*domain.Session, error) {
	now := time.Now()
	sess := &domain.Session{
		ID:           uuid.New(),
		UserID:       userID,
		ConnectionID: connectionID,
		Status:       domain.SessionActive,
		CreatedAt:    now,
		LastActivity: now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, connection_id, status, created_at, last_activity)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID.String(), sess.UserID.String(), sess.ConnectionID.String(), string(sess.Status),
		sess.CreatedAt.Unix(), sess.LastActivity.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *SQLiteStore) FindSessionByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, connection_id, status, created_at, last_activity FROM sessions WHERE id = ?`, id.String())
	return scanSession(row)
}

func (s *SQLiteStore) ListSessionsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	return s.querySessions(ctx,
		`SELECT id, user_id, connection_id, status, created_at, last_activity
		 FROM sessions WHERE user_id = ? ORDER BY last_activity DESC`, userID.String())
}

func (s *SQLiteStore) ListActiveSessionsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	return s.querySessions(ctx,
		`SELECT id, user_id, connection_id, status, created_at, last_activity
		 FROM sessions WHERE user_id = ? AND status = ? ORDER BY last_activity DESC`,
		userID.String(), string(domain.SessionActive))
}

func (s *SQLiteStore) ListAllActiveSessions(ctx context.Context) ([]*domain.Session, error) {
	return s.querySessions(ctx,
		`SELECT id, user_id, connection_id, status, created_at, last_activity
		 FROM sessions WHERE status = ?`, string(domain.SessionActive))
}

func (s *SQLiteStore) querySessions(ctx context.Context, query string, args ...interface{}) ([]*domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateSessionStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE sessions SET status = ? WHERE id = ?`, string(status), id.String())
	if err != nil {
		return false, fmt.Errorf("update session status: %w", err)
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (s *SQLiteStore) UpdateSessionActivity(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE sessions SET last_activity = ? WHERE id = ?`, time.Now().Unix(), id.String())
	if err != nil {
		return false, fmt.Errorf("update session activity: %w", err)
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (s *SQLiteStore) CloseSession(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.UpdateSessionStatus(ctx, id, domain.SessionClosed)
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var sess domain.Session
	var id, userID, connectionID, status string
	var createdAt, lastActivity int64

	if err := row.Scan(&id, &userID, &connectionID, &status, &createdAt, &lastActivity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	var err error
	if sess.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse session id: %w", err)
	}
	if sess.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("parse session user id: %w", err)
	}
	if sess.ConnectionID, err = uuid.Parse(connectionID); err != nil {
		return nil, fmt.Errorf("parse session connection id: %w", err)
	}
	sess.Status = domain.SessionStatus(status)
	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.LastActivity = time.Unix(lastActivity, 0)
	return &sess, nil
}

// --- scrollback ----------------------------------------------------------------
//
// AppendScrollback mirrors the original chunking algorithm exactly: extend
// the current last chunk up to domain.ChunkMax bytes, then lay down new
// full-sized chunks for whatever remains. Only the last chunk may be
// shorter than ChunkMax, and only it may grow.

func (s *SQLiteStore) AppendScrollback(ctx context.Context, sessionID uuid.UUID, data []byte) error {
	return s.withBusyRetry(ctx, func() error {
		return s.appendScrollbackOnce(ctx, sessionID, data)
	})
}

func (s *SQLiteStore) appendScrollbackOnce(ctx context.Context, sessionID uuid.UUID, data []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin scrollback append: %w", err)
	}
	defer tx.Rollback()

	var maxIndex sql.NullInt64
	if err := tx.QueryRowContext(ctx,
		`SELECT MAX(chunk_index) FROM scrollback_chunks WHERE session_id = ?`, sessionID.String(),
	).Scan(&maxIndex); err != nil {
		return fmt.Errorf("query max chunk index: %w", err)
	}

	chunkIndex := int32(-1)
	if maxIndex.Valid {
		chunkIndex = int32(maxIndex.Int64)
	}
	remaining := data

	if chunkIndex >= 0 {
		var lastData []byte
		err := tx.QueryRowContext(ctx,
			`SELECT data FROM scrollback_chunks WHERE session_id = ? AND chunk_index = ?`,
			sessionID.String(), chunkIndex,
		).Scan(&lastData)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query last chunk: %w", err)
		}

		spaceLeft := domain.ChunkMax - len(lastData)
		if spaceLeft > 0 && len(remaining) > 0 {
			toAppend := min(spaceLeft, len(remaining))
			newData := append(lastData, remaining[:toAppend]...)

			if _, err := tx.ExecContext(ctx,
				`UPDATE scrollback_chunks SET data = ? WHERE session_id = ? AND chunk_index = ?`,
				newData, sessionID.String(), chunkIndex,
			); err != nil {
				return fmt.Errorf("extend last chunk: %w", err)
			}
			remaining = remaining[toAppend:]
		}
	}

	now := time.Now().Unix()
	for len(remaining) > 0 {
		chunkIndex++
		size := min(domain.ChunkMax, len(remaining))

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scrollback_chunks (session_id, chunk_index, data, created_at) VALUES (?, ?, ?, ?)`,
			sessionID.String(), chunkIndex, remaining[:size], now,
		); err != nil {
			return fmt.Errorf("insert chunk: %w", err)
		}
		remaining = remaining[size:]
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetScrollback(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	chunks, err := s.loadChunks(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out, nil
}

func (s *SQLiteStore) GetScrollbackFromOffset(ctx context.Context, sessionID uuid.UUID, offset int) ([]byte, error) {
	chunks, err := s.loadChunks(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var out []byte
	currentOffset := 0
	for _, c := range chunks {
		chunkLen := len(c)
		if currentOffset+chunkLen <= offset {
			currentOffset += chunkLen
			continue
		}
		startInChunk := 0
		if currentOffset < offset {
			startInChunk = offset - currentOffset
		}
		out = append(out, c[startInChunk:]...)
		currentOffset += chunkLen
	}
	return out, nil
}

func (s *SQLiteStore) GetScrollbackSize(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var size sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(LENGTH(data)), 0) FROM scrollback_chunks WHERE session_id = ?`, sessionID.String(),
	).Scan(&size)
	if err != nil {
		return 0, fmt.Errorf("scrollback size: %w", err)
	}
	return int(size.Int64), nil
}

func (s *SQLiteStore) DeleteScrollbackForSession(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scrollback_chunks WHERE session_id = ?`, sessionID.String())
	if err != nil {
		return false, fmt.Errorf("delete scrollback: %w", err)
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (s *SQLiteStore) loadChunks(ctx context.Context, sessionID uuid.UUID) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM scrollback_chunks WHERE session_id = ? ORDER BY chunk_index`, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}
	defer rows.Close()

	var chunks [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		chunks = append(chunks, data)
	}
	return chunks, rows.Err()
}

// withBusyRetry retries fn with exponential backoff when SQLite reports
// the database as busy or locked, the same posture the teacher's TTL
// worker uses for its own writes.
func (s *SQLiteStore) withBusyRetry(ctx context.Context, fn func() error) error {
	const maxAttempts = 3
	baseDelay := 50 * time.Millisecond

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !shared.IsSQLiteConflictError(err) {
			return err
		}
		if attempt < maxAttempts-1 {
			delay := baseDelay * time.Duration(1<<attempt)
			slog.Debug("store: retrying after SQLITE_BUSY", "attempt", attempt+1, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("exhausted retries: %w", err)
}

func uuidPtrToSQL(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

func strPtrToSQL(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

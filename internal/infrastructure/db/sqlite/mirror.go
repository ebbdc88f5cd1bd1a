// Package sqlite holds the best-effort relational mirror of promoted users.
// The document store remains authoritative; this mirror exists as an
// operational backup and its write failures never fail a registration.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/storelane/commerce-api/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS users_backup (
	user_id       TEXT PRIMARY KEY,
	name          TEXT,
	email         TEXT UNIQUE,
	password_hash TEXT,
	created_at    TEXT
);`

// UserMirror implements ports.UserMirror on a local SQLite file.
type UserMirror struct {
	db *sql.DB
}

// NewUserMirror opens (or creates) the mirror database and ensures the
// backup table exists.
func NewUserMirror(path string) (*UserMirror, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open mirror: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create mirror schema: %w", err)
	}

	return &UserMirror{db: db}, nil
}

// SaveUser upserts the user into the backup table.
func (m *UserMirror) SaveUser(ctx context.Context, user *domain.User) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO users_backup (user_id, name, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.UserID, user.Name, user.Email, user.PasswordHash,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("mirror user: %w", err)
	}
	return nil
}

// Ping verifies the database file is still writable.
func (m *UserMirror) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *UserMirror) Close() error { return m.db.Close() }

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"social-arch/internal/repository"
	pkgLog "social-arch/pkg/log"
)

const schema = `CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const upsert = `INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (or creates) the SQLite database at path and migrates the records table.
func New(ctx context.Context, path string, l pkgLog.Logger) (repository.Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes serialized and ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) Load(ctx context.Context, key string, v any) error {
	if key == "" {
		return repository.ErrInvalidKey
	}

	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: select %s: %v", key, err)
		return fmt.Errorf("select %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *implRepository) Save(ctx context.Context, key string, v any) error {
	if key == "" {
		return repository.ErrInvalidKey
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if _, err := r.db.ExecContext(ctx, upsert, key, string(raw)); err != nil {
		r.l.Errorf(ctx, "sqlite repository: upsert %s: %v", key, err)
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// Package store is the engine's local sqlite persistence: an observational
// audit log of invite attempts. Eligibility decisions never read it; the
// in-session tracker owns those.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type DB struct {
	Pool *sql.DB
}

func Open(path string) (*DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	// sqlite typically wants a single writer
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}

	db := &DB{Pool: pool}
	if err := db.migrate(); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) migrate() error {
	_, err := d.Pool.Exec(`
CREATE TABLE IF NOT EXISTS invite_attempts (
  id TEXT PRIMARY KEY,
  student_id TEXT NOT NULL,
  position TEXT NOT NULL,
  success INTEGER NOT NULL,
  message TEXT NOT NULL DEFAULT '',
  attempted_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invite_attempts_at ON invite_attempts(attempted_at DESC);
`)
	return errors.Wrap(err, "migrate")
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}

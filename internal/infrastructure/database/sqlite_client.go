package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const estimatesSchema = `
CREATE TABLE IF NOT EXISTS estimates (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	area_tsubo REAL NOT NULL,
	structure  TEXT NOT NULL,
	road_width TEXT NOT NULL,
	sub_total  INTEGER NOT NULL,
	tax        INTEGER NOT NULL,
	total      INTEGER NOT NULL,
	params     TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates (created_at);
`

// ConnectSQLite opens the local estimate log and applies its schema. Pass
// ":memory:" for a throwaway database.
func ConnectSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	// go-sqlite3 gives every connection its own :memory: database.
	db.SetMaxOpenConns(1)

	if err := InitSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func InitSQLiteSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, estimatesSchema); err != nil {
		return fmt.Errorf("sqlite schema: %w", err)
	}
	return nil
}

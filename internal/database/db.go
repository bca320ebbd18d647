// Package database provides the sqlite-backed repositories: finished
// sessions, timer labels, and the settings key/value store that also holds
// the durable timer-state slot.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sql connection and implements the repository
// interfaces in interface.go.
type Database struct {
	DB *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema is current.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS labels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			color_index INTEGER DEFAULT 0,
			is_default INTEGER DEFAULT 0,
			is_countdown INTEGER DEFAULT 1,
			focus_minutes INTEGER DEFAULT 25,
			break_minutes INTEGER DEFAULT 5,
			long_break_minutes INTEGER DEFAULT 15,
			breaks_enabled INTEGER DEFAULT 1,
			long_breaks_enabled INTEGER DEFAULT 1,
			sessions_before_long_break INTEGER DEFAULT 4,
			work_break_ratio INTEGER DEFAULT 3
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			duration_minutes INTEGER NOT NULL,
			interruptions_minutes INTEGER DEFAULT 0,
			label TEXT NOT NULL,
			is_work INTEGER DEFAULT 1,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table %q: %w", query, err)
		}
	}
	return nil
}

// migrate applies additive schema changes to existing databases. The
// ALTERs fail harmlessly when the column already exists.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE sessions ADD COLUMN notes TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE labels ADD COLUMN work_break_ratio INTEGER DEFAULT 3")
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection shared by the preset store and the
// asset cache.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer keeps sqlite from reporting SQLITE_BUSY under the web page
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		if isNotADatabase(err) {
			return nil, ErrDatabaseCorrupted
		}
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS cache_entries (
			bucket TEXT NOT NULL,
			path TEXT NOT NULL,
			status INTEGER NOT NULL DEFAULT 200,
			content_type TEXT,
			headers TEXT,
			body BLOB,
			digest TEXT,
			stored_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (bucket, path)
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			if isNotADatabase(err) {
				return ErrDatabaseCorrupted
			}
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// Package sqlite implements the sound index on SQLite and the Enumerator
// the picker reads it through. It handles connection lifecycle, migrations,
// and snapshot queries.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sashworth/tonepick/internal/infrastructure/migrations"
	"github.com/sashworth/tonepick/internal/log"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB manages the SQLite connection to the sound index.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the index at path, configures pragmas, and runs migrations.
// The parent directory is created if it does not exist.
func Open(path string) (*DB, error) {
	log.Debug(log.CatDB, "Opening sound index", "path", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.ErrorErr(log.CatDB, "Failed to create index directory", err, "path", dir)
		return nil, fmt.Errorf("failed to create index directory %s: %w", dir, err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open index", err, "path", path)
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to ping index", err, "path", path)
		return nil, fmt.Errorf("failed to ping index: %w", err)
	}

	// WAL so a scan can run while a picker session reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to enable WAL mode", err)
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to enable foreign keys", err)
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to set busy timeout", err)
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := migrations.RunMigrations(conn); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to run migrations", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info(log.CatDB, "Sound index ready", "path", path)

	return &DB{conn: conn, path: path}, nil
}

// Close releases the index connection.
func (db *DB) Close() error {
	if db.conn != nil {
		log.Debug(log.CatDB, "Closing sound index", "path", db.path)
		return db.conn.Close()
	}
	return nil
}

// Connection returns the underlying *sql.DB. The scanner writes through it.
func (db *DB) Connection() *sql.DB {
	return db.conn
}

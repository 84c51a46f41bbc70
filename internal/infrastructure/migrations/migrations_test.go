package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// TestRunMigrations_FreshDB verifies all migrations apply to an empty :memory: database.
func TestRunMigrations_FreshDB(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err, "ncruces driver should open :memory: database")
	defer db.Close()

	err = RunMigrations(db)
	require.NoError(t, err, "RunMigrations should succeed on fresh database")

	var tableName string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='sounds'`).Scan(&tableName)
	require.NoError(t, err, "sounds table should exist")
	require.Equal(t, "sounds", tableName)
}

// TestRunMigrations_Idempotent verifies calling RunMigrations twice doesn't error.
func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(db)
	require.NoError(t, err, "first migration run should succeed")

	// ErrNoChange is handled internally
	err = RunMigrations(db)
	require.NoError(t, err, "second migration run should not error")
}

// TestMigrations_Schema verifies the sounds table has the expected columns
// and the category check constraint holds.
func TestMigrations_Schema(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))

	rows, err := db.Query(`PRAGMA table_info(sounds)`)
	require.NoError(t, err)
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name, typ string
		var notnull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk))
		cols[name] = true
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{"id", "uri", "title", "path", "category", "added_at"} {
		require.True(t, cols[want], "expected column %q", want)
	}

	// Category is constrained to the three known values.
	_, err = db.Exec(`INSERT INTO sounds (uri, title, path, category) VALUES ('tone://x', 'X', '/x.wav', 'podcast')`)
	require.Error(t, err, "unknown category should violate the check constraint")

	_, err = db.Exec(`INSERT INTO sounds (uri, title, path, category) VALUES ('tone://x', 'X', '/x.wav', 'alarm')`)
	require.NoError(t, err)
}

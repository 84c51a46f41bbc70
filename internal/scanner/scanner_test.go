package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashworth/tonepick/internal/media/sqlite"
)

func newTestIndex(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func writeSound(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))
	return path
}

func TestScan_IndexesAudioFiles(t *testing.T) {
	dir := t.TempDir()
	writeSound(t, dir, filepath.Join("ringtones", "classic_bell.wav"))
	writeSound(t, dir, filepath.Join("notifications", "soft-chime.ogg"))
	writeSound(t, dir, filepath.Join("alarms", "pulse.mp3"))
	writeSound(t, dir, "readme.txt") // not audio

	s := New(newTestIndex(t), dir)
	stats, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Indexed)
	assert.Zero(t, stats.Removed)

	rows, err := s.db.Connection().Query("SELECT title, category FROM sounds ORDER BY title")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	type entry struct{ title, category string }
	var got []entry
	for rows.Next() {
		var e entry
		require.NoError(t, rows.Scan(&e.title, &e.category))
		got = append(got, e)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []entry{
		{"Classic Bell", "ringtone"},
		{"Pulse", "alarm"},
		{"Soft Chime", "notification"},
	}, got)
}

func TestScan_RescanPreservesURI(t *testing.T) {
	dir := t.TempDir()
	writeSound(t, dir, filepath.Join("ringtones", "bell.wav"))

	s := New(newTestIndex(t), dir)
	_, err := s.Scan(context.Background())
	require.NoError(t, err)

	var first string
	require.NoError(t, s.db.Connection().QueryRow("SELECT uri FROM sounds").Scan(&first))

	stats, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Indexed)
	assert.Equal(t, 1, stats.Kept)

	var second string
	require.NoError(t, s.db.Connection().QueryRow("SELECT uri FROM sounds").Scan(&second))
	assert.Equal(t, first, second, "an already-picked URI must survive rescans")
}

func TestScan_PrunesVanishedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSound(t, dir, filepath.Join("ringtones", "bell.wav"))

	s := New(newTestIndex(t), dir)
	_, err := s.Scan(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	stats, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Removed)

	var count int
	require.NoError(t, s.db.Connection().QueryRow("SELECT COUNT(*) FROM sounds").Scan(&count))
	assert.Zero(t, count)
}

func TestScan_UncategorisedFilesAreRingtones(t *testing.T) {
	dir := t.TempDir()
	writeSound(t, dir, "loose.wav")

	s := New(newTestIndex(t), dir)
	_, err := s.Scan(context.Background())
	require.NoError(t, err)

	var category string
	require.NoError(t, s.db.Connection().QueryRow("SELECT category FROM sounds").Scan(&category))
	assert.Equal(t, "ringtone", category)
}

func TestScan_MissingDirIsEmpty(t *testing.T) {
	s := New(newTestIndex(t), filepath.Join(t.TempDir(), "nonexistent"))
	stats, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Indexed)
}

func TestSeed_PopulatesEmptyLibrary(t *testing.T) {
	dir := t.TempDir()
	s := New(newTestIndex(t), dir)

	require.NoError(t, s.Seed(context.Background()))

	var count int
	require.NoError(t, s.db.Connection().QueryRow("SELECT COUNT(*) FROM sounds").Scan(&count))
	assert.Greater(t, count, 0, "seeding an empty library indexes the built-in sounds")

	// Seeding again is a no-op.
	require.NoError(t, s.Seed(context.Background()))
	var after int
	require.NoError(t, s.db.Connection().QueryRow("SELECT COUNT(*) FROM sounds").Scan(&after))
	assert.Equal(t, count, after)
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"classic_bell.wav", "Classic Bell"},
		{"soft-chime.ogg", "Soft Chime"},
		{"/sounds/alarms/morning_pulse_2.mp3", "Morning Pulse 2"},
		{"plain.flac", "Plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleFor(tt.path), tt.path)
	}
}

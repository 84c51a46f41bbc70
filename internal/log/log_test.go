package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesCategorisedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.log")
	require.NoError(t, Init(path, "debug"))
	t.Cleanup(func() { _ = Close() })

	Debug(CatDB, "opening index", "path", "/tmp/x.db")
	Info(CatUI, "session opened")
	Warn(CatAudio, "decode slow")
	Error(CatScan, "walk failed")

	require.NoError(t, Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "cat=db")
	assert.Contains(t, out, "cat=ui")
	assert.Contains(t, out, "cat=audio")
	assert.Contains(t, out, "cat=scan")
	assert.Contains(t, out, "opening index")
}

func TestInit_LevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, Init(path, "warn"))
	t.Cleanup(func() { _ = Close() })

	Debug(CatDB, "hidden")
	Info(CatDB, "also hidden")
	Warn(CatDB, "shown")

	require.NoError(t, Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestErrorErr_AttachesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, Init(path, "info"))
	t.Cleanup(func() { _ = Close() })

	ErrorErr(CatDB, "query failed", os.ErrNotExist, "table", "sounds")

	require.NoError(t, Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file does not exist")
	assert.Contains(t, string(data), "table=sounds")
}

func TestClose_WithoutInitIsNoop(t *testing.T) {
	require.NoError(t, Close())
	// Logging after Close must not panic.
	Info(CatUI, "discarded")
}

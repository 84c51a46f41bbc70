package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDir_HonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", filepath.FromSlash("/custom/data"))
	assert.Equal(t, filepath.FromSlash("/custom/data/tonepick"), DataDir())
}

func TestDataDir_DefaultsUnderHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", filepath.FromSlash("/home/tester"))
	assert.Equal(t, filepath.FromSlash("/home/tester/.local/share/tonepick"), DataDir())
}

func TestDerivedPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", filepath.FromSlash("/data"))
	require.Equal(t, filepath.FromSlash("/data/tonepick/library.db"), LibraryFile())
	require.Equal(t, filepath.FromSlash("/data/tonepick/sounds"), SoundsDir())
	require.Equal(t, filepath.FromSlash("/data/tonepick/tonepick.log"), LogFile())
}

func TestConfigFile_EndsWithYAML(t *testing.T) {
	assert.Equal(t, "config.yaml", filepath.Base(ConfigFile()))
}

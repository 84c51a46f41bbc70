// Package paths resolves the on-disk locations tonepick uses: the config
// file, the sound index, the sounds directory, and the log file. Everything
// lives under the platform config and data directories.
package paths

import (
	"os"
	"path/filepath"
)

const appDir = "tonepick"

// ConfigFile returns the config file path, ~/.config/tonepick/config.yaml
// on most systems.
func ConfigFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, appDir, "config.yaml")
}

// DataDir returns the data directory holding the index and sounds.
// XDG_DATA_HOME is honoured; the fallback is ~/.local/share/tonepick.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appDir
	}
	return filepath.Join(home, ".local", "share", appDir)
}

// LibraryFile returns the default sound index path.
func LibraryFile() string {
	return filepath.Join(DataDir(), "library.db")
}

// SoundsDir returns the default sounds directory.
func SoundsDir() string {
	return filepath.Join(DataDir(), "sounds")
}

// LogFile returns the default log file path. Logs go to a file because
// stderr belongs to the terminal UI.
func LogFile() string {
	return filepath.Join(DataDir(), "tonepick.log")
}

// Package config provides configuration types and defaults for tonepick.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sashworth/tonepick/internal/paths"
	"github.com/sashworth/tonepick/internal/telemetry"
)

// Config holds all configuration options for tonepick.
type Config struct {
	// LibraryPath is the SQLite sound index.
	LibraryPath string `mapstructure:"library_path"`

	// SoundsDir is the directory tree of audio files the scanner indexes.
	SoundsDir string `mapstructure:"sounds_dir"`

	// Locale selects the sound-name catalog, e.g. "en" or "de".
	Locale string `mapstructure:"locale"`

	Picker    PickerConfig     `mapstructure:"picker"`
	Log       LogConfig        `mapstructure:"log"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// PickerConfig holds the default picker presentation options. Command-line
// flags override them per invocation.
type PickerConfig struct {
	ShowDefault  bool `mapstructure:"show_default"`
	ShowSilent   bool `mapstructure:"show_silent"`
	ShowOkCancel bool `mapstructure:"show_ok_cancel"`
}

// LogConfig holds logging options. Logs always go to a file; stderr belongs
// to the terminal UI.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		LibraryPath: paths.LibraryFile(),
		SoundsDir:   paths.SoundsDir(),
		Locale:      "en",
		Picker: PickerConfig{
			ShowDefault:  true,
			ShowSilent:   true,
			ShowOkCancel: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  paths.LogFile(),
		},
		Telemetry: telemetry.Config{
			Exporter: telemetry.ExporterNone,
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields Defaults unchanged; a malformed one is an
// error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(paths.ConfigFile())
	}

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Tonepick Configuration

# Sound index database (default: ~/.local/share/tonepick/library.db)
# library_path: /path/to/library.db

# Directory of audio files to index. Files under ringtones/, notifications/
# and alarms/ get the matching category; everything else is a ringtone.
# sounds_dir: /path/to/sounds

# Sound-name catalog: en, de
locale: en

# Picker presentation defaults (flags override per invocation)
picker:
  show_default: true    # Offer the "Default" row
  show_silent: true     # Offer the "None" row
  show_ok_cancel: true  # Confirm with OK/Cancel; false picks on selection

# Logging (always to a file; the terminal belongs to the picker)
log:
  level: info           # debug, info, warn, error
  # file: /path/to/tonepick.log

# Tracing
telemetry:
  exporter: none        # none, stdout, otlp
  # endpoint: localhost:4317   # otlp collector, host:port
  # stdout_path: /tmp/spans.json
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.NotEmpty(t, cfg.LibraryPath)
	assert.NotEmpty(t, cfg.SoundsDir)
	assert.Equal(t, "en", cfg.Locale)
	assert.True(t, cfg.Picker.ShowDefault)
	assert.True(t, cfg.Picker.ShowSilent)
	assert.True(t, cfg.Picker.ShowOkCancel)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Telemetry.Exporter)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
locale: de
picker:
  show_ok_cancel: false
log:
  level: debug
telemetry:
  exporter: stdout
`)

	assert.Equal(t, "de", cfg.Locale)
	assert.False(t, cfg.Picker.ShowOkCancel)
	assert.True(t, cfg.Picker.ShowDefault, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stdout", cfg.Telemetry.Exporter)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("picker: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.True(t, cfg.Picker.ShowOkCancel)
}

// TestDefaultConfigTemplate_ParsesToDefaults keeps the commented template
// and Defaults in sync for every uncommented key.
func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	want := Defaults()

	assert.Equal(t, want.Locale, cfg.Locale)
	assert.Equal(t, want.Picker, cfg.Picker)
	assert.Equal(t, want.Log.Level, cfg.Log.Level)
	assert.Equal(t, want.Telemetry.Exporter, cfg.Telemetry.Exporter)
}

// loadConfigFromYAML is a helper to load config from YAML string.
func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0644)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(configPath)
	err = v.ReadInConfig()
	require.NoError(t, err)

	cfg := Defaults()
	err = v.Unmarshal(&cfg)
	require.NoError(t, err)

	return cfg
}

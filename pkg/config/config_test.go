package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "0x11D", cfg.Defaults.Polynomial)
	assert.Equal(t, "rust", cfg.Defaults.Format)
	assert.Equal(t, "EXP_TABLE", cfg.Defaults.ExpName)
	assert.Equal(t, "LOG_TABLE", cfg.Defaults.LogName)
	assert.True(t, cfg.UI.UseColor)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Defaults.Polynomial = "0x12B"
	cfg.Defaults.Format = "go"
	cfg.UI.UseColor = false
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults":{"format":"c"}}`), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "c", cfg.Defaults.Format)
	// Fields absent from the file keep their built-in defaults.
	assert.Equal(t, "0x11D", cfg.Defaults.Polynomial)
	assert.Equal(t, "EXP_TABLE", cfg.Defaults.ExpName)
}

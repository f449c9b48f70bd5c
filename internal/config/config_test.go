package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  directory: out
  encoding: UTF-16LE
  withBOM: true
  wrapLines: true
logs:
  enabled: true
  directory: /var/log/edidkit
  level: debug
  maxBackups: 7
defaults:
  setPreferredModeSize: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, Output{Directory: filepath.Join(dir, "out"), Encoding: "UTF-16LE", WithBOM: true, WrapLines: true}, cfg.Output)
	assert.True(t, cfg.Logs.Enabled)
	assert.Equal(t, "/var/log/edidkit", cfg.Logs.Directory)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 7, cfg.Logs.MaxBackups)
	// Unset keys keep their defaults.
	assert.Equal(t, 10, cfg.Logs.MaxSizeMB)
	assert.Equal(t, 30, cfg.Logs.MaxAgeDays)
	assert.True(t, cfg.Defaults.SetPreferredModeSize)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  colour: red\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{}))
	t.Cleanup(Close)
	assert.False(t, L.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestDisableAfterEnable(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	require.True(t, L.Enabled(t.Context(), slog.LevelInfo))

	require.NoError(t, Init(Options{}))
	t.Cleanup(Close)
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))

	Debug("loaded", "device", `DISPLAY\X\1`)
	Close()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "loaded", rec["msg"])
	assert.Equal(t, `DISPLAY\X\1`, rec["device"])
}

func TestInitStderrAndFile(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	require.NoError(t, Init(Options{
		Enabled:     true,
		LogDir:      dir,
		Level:       slog.LevelDebug,
		Stderr:      &stderr,
		StderrLevel: slog.LevelWarn,
	}))
	t.Cleanup(Close)

	Info("quiet on stderr")
	Warn("checksum mismatch", "want", 1, "got", 2)
	Close()

	assert.NotContains(t, stderr.String(), "quiet on stderr")
	assert.Contains(t, stderr.String(), "checksum mismatch")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardByDefault(t *testing.T) {
	require.NotNil(t, L)
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInitWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nbtctl.log")
	require.NoError(t, Init(Options{Enabled: true, Path: path, Level: slog.LevelDebug}))
	t.Cleanup(Close)

	Debug("decoded", "file", "player.dat", "nodes", 12)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "decoded", rec["msg"])
	assert.Equal(t, "player.dat", rec["file"])
	assert.EqualValues(t, 12, rec["nodes"])
}

func TestInitLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nbtctl.log")
	require.NoError(t, Init(Options{Enabled: true, Path: path, Level: slog.LevelWarn}))
	Info("dropped")
	Warn("kept")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestInitDisabled(t *testing.T) {
	require.NoError(t, Init(Options{}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
	require.Error(t, Init(Options{Enabled: true}))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

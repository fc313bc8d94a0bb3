package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/internal/container"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "//Inventory", cfg.Target)
	assert.True(t, cfg.AppendRootTerminator)
	assert.True(t, cfg.Backup)
	assert.Equal(t, 9, cfg.Compression.Level)
	assert.Equal(t, container.Auto, cfg.Format())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
target: //EnderItems
backup: false
compression:
  format: zlib
  level: 6
`))
	require.NoError(t, err)
	assert.Equal(t, "//EnderItems", cfg.Target)
	assert.False(t, cfg.Backup)
	assert.Equal(t, container.Zlib, cfg.Format())
	assert.Equal(t, 6, cfg.Compression.Level)
	assert.True(t, cfg.AppendRootTerminator, "unset keys keep defaults")
	assert.Equal(t, 512, cfg.Limits.MaxDepth)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "targte: //Inventory\n",
		"bad format":   "compression:\n  format: brotli\n",
		"bad level":    "compression:\n  level: 12\n",
		"neg depth":    "limits:\n  max_depth: -1\n",
		"invalid yaml": "target: [\n",
		"wrong type":   "backup: maybe\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	flagPath := filepath.Join(dir, "flag.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("target: //FromEnv\n"), 0o644))
	require.NoError(t, os.WriteFile(flagPath, []byte("target: //FromFlag\n"), 0o644))

	t.Setenv(EnvVar, envPath)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "//FromEnv", cfg.Target)

	cfg, err = Load(flagPath)
	require.NoError(t, err)
	assert.Equal(t, "//FromFlag", cfg.Target)

	t.Setenv(EnvVar, "")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

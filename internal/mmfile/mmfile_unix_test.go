//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapReadOnlyUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player.dat")
	want := []byte{0x1f, 0x8b, 0x08, 0x00, 0x42}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup(), "second cleanup is a no-op")
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, cleanup())
}

func TestMapRejectsDirectory(t *testing.T) {
	_, _, err := Map(t.TempDir())
	require.Error(t, err)
}

func TestMapMissingFile(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.dat"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

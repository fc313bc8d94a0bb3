package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/nbtkit/internal/container"
)

// WritePlayerFile compresses raw with the given container format and writes it
// to a fresh temporary directory. It returns the file path.
//
// Example:
//
//	path := testutil.WritePlayerFile(t, testutil.Player(items...), container.Gzip)
func WritePlayerFile(t *testing.T, raw []byte, f container.Format) string {
	t.Helper()
	data, err := container.Compress(raw, f, container.DefaultLevel)
	if err != nil {
		t.Fatalf("compress fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "player.dat")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// ReadPlayerFile reads and decompresses the file at path.
func ReadPlayerFile(t *testing.T, path string) ([]byte, container.Format) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	raw, f, err := container.Decompress(data)
	if err != nil {
		t.Fatalf("decompress %s: %v", path, err)
	}
	return raw, f
}

// Package writer exposes sinks for rewritten player files and the backup
// copy taken before a file is modified.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives the final bytes of a rewritten file.
type Sink interface {
	WriteData(buf []byte) error
}

// FileWriter writes bytes to a filesystem path atomically. The original
// file's permission bits are kept when it already exists.
type FileWriter struct {
	Path string
}

// WriteData writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) WriteData(buf []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(w.Path); err == nil {
		mode = info.Mode().Perm()
	}

	// Temp file in the same directory so the rename stays on one filesystem
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".nbtkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmpFile.Chmod(mode); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

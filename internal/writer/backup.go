package writer

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// BackupSuffix is appended to a file's path to name its backup.
const BackupSuffix = ".bak"

// Digest is a 32-byte BLAKE3 hash of a file's contents.
type Digest [32]byte

// String returns the lowercase hex form of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Sum returns the BLAKE3 digest of data.
func Sum(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// Backup copies src to src+BackupSuffix and re-reads the copy to confirm it
// hashes the same as the source. It returns the backup path and the digest.
// An existing backup is overwritten.
func Backup(src string) (string, Digest, error) {
	dst := src + BackupSuffix

	in, err := os.Open(src)
	if err != nil {
		return "", Digest{}, fmt.Errorf("writer: open %s: %w", src, err)
	}
	defer in.Close()

	h := blake3.New()
	var copied bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(h, &copied), in); err != nil {
		return "", Digest{}, fmt.Errorf("writer: read %s: %w", src, err)
	}
	var want Digest
	copy(want[:], h.Sum(nil))

	fw := &FileWriter{Path: dst}
	if err := fw.WriteData(copied.Bytes()); err != nil {
		return "", Digest{}, fmt.Errorf("writer: backup %s: %w", dst, err)
	}

	written, err := os.ReadFile(dst)
	if err != nil {
		return "", Digest{}, fmt.Errorf("writer: verify %s: %w", dst, err)
	}
	if got := Sum(written); got != want {
		return "", Digest{}, fmt.Errorf("writer: backup %s digest %s does not match source %s", dst, got, want)
	}
	return dst, want, nil
}

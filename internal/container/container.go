// Package container handles the compression wrapper around player files.
// Files are usually gzip; region-style payloads use zlib; some tools write
// the tree uncompressed. The decoder never sees any of this.
package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Format identifies the compression wrapper of a file.
type Format uint8

const (
	// Auto asks Decompress to detect the wrapper. It is not a valid output
	// format.
	Auto Format = iota
	// None means the tree is stored uncompressed.
	None
	// Gzip is the wrapper the producer uses for player and level files.
	Gzip
	// Zlib is the wrapper used for chunk payloads inside region files.
	Zlib
)

// DefaultLevel is the compression level used when writing. The producer
// accepts any level; maximum compression keeps rewritten files small.
const DefaultLevel = gzip.BestCompression

// DefaultMaxSize bounds decompressed output. Player files are kilobytes to
// a few megabytes; anything past this is treated as hostile.
const DefaultMaxSize = 256 << 20

var (
	// ErrTooLarge indicates the decompressed stream exceeded the size bound.
	ErrTooLarge = errors.New("container: decompressed data exceeds size limit")
	// ErrUnknownFormat indicates a format value outside the known set.
	ErrUnknownFormat = errors.New("container: unknown format")
)

// String returns the human-readable name of a format.
func (f Format) String() string {
	switch f {
	case Auto:
		return "auto"
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseFormat parses a format from its string representation.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "auto", "":
		return Auto, nil
	case "none", "raw":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zlib":
		return Zlib, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Detect inspects the leading bytes of data. Anything that is neither a gzip
// member nor a valid zlib header is reported as None.
func Detect(data []byte) Format {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return Gzip
	}
	// zlib: CM=8 (deflate), CINFO<=7 and the 16-bit header is a multiple of 31.
	if len(data) >= 2 && data[0]&0x0f == 8 && data[0]>>4 <= 7 &&
		(uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
		return Zlib
	}
	return None
}

// Decompress detects the wrapper and returns the inner bytes along with the
// detected format, bounded by DefaultMaxSize.
func Decompress(data []byte) ([]byte, Format, error) {
	return DecompressLimit(data, Auto, DefaultMaxSize)
}

// DecompressLimit decompresses data as format f (Auto detects) and fails with
// ErrTooLarge when the output would exceed limit bytes.
func DecompressLimit(data []byte, f Format, limit int64) ([]byte, Format, error) {
	if f == Auto {
		f = Detect(data)
	}
	var (
		r   io.Reader
		err error
	)
	switch f {
	case None:
		if int64(len(data)) > limit {
			return nil, f, ErrTooLarge
		}
		return bytes.Clone(data), f, nil
	case Gzip:
		var zr *gzip.Reader
		zr, err = gzip.NewReader(bytes.NewReader(data))
		if err == nil {
			defer zr.Close()
			r = zr
		}
	case Zlib:
		var zr io.ReadCloser
		zr, err = zlib.NewReader(bytes.NewReader(data))
		if err == nil {
			defer zr.Close()
			r = zr
		}
	default:
		return nil, f, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	if err != nil {
		return nil, f, fmt.Errorf("container: open %s stream: %w", f, err)
	}

	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, f, fmt.Errorf("container: read %s stream: %w", f, err)
	}
	if int64(len(out)) > limit {
		return nil, f, ErrTooLarge
	}
	return out, f, nil
}

// Compress wraps data in format f at the given level. Levels follow the
// deflate convention: -1 default, 0 store, 1..9 speed to size, -2 Huffman
// only.
func Compress(data []byte, f Format, level int) ([]byte, error) {
	var out bytes.Buffer
	var w io.WriteCloser
	var err error
	switch f {
	case None:
		return bytes.Clone(data), nil
	case Gzip:
		w, err = gzip.NewWriterLevel(&out, level)
	case Zlib:
		w, err = zlib.NewWriterLevel(&out, level)
	default:
		return nil, fmt.Errorf("%w: cannot write %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("container: %s level %d: %w", f, level, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("container: %s write: %w", f, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("container: %s close: %w", f, err)
	}
	return out.Bytes(), nil
}

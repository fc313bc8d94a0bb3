package nbt

import (
	"github.com/joshuapare/nbtkit/internal/container"
	"github.com/joshuapare/nbtkit/internal/writer"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Format identifies a file's compression wrapper (re-exported for convenience).
type Format = container.Format

// Compression formats (re-exported for convenience).
const (
	FormatAuto = container.Auto
	FormatNone = container.None
	FormatGzip = container.Gzip
	FormatZlib = container.Zlib
)

// Sink receives rewritten file bytes (re-exported for convenience).
type Sink = writer.Sink

// ParseFormat parses "auto", "gzip", "zlib" or "none".
func ParseFormat(name string) (Format, error) {
	return container.ParseFormat(name)
}

// Options controls loading and rewriting of files.
type Options struct {
	// Target is the path of the list to rank and edit, as segments.
	// Default: ["", "Inventory"]
	Target []string

	// AppendRootTerminator appends the compound terminator the producer
	// omits at the end of the root before decoding. The byte is removed
	// again before anything is written back.
	AppendRootTerminator bool

	// Format is the container to read and write. FormatAuto detects it on
	// read and writes back the detected format.
	Format Format

	// Level is the deflate level used when writing. Default: 9
	Level int

	// CreateBackup copies the file to <path>.bak before it is rewritten.
	CreateBackup bool

	// Limits bounds decoding work. The zero value uses defaults.
	Limits types.Limits

	// Sink receives the rewritten file. If nil, the file at path is
	// replaced atomically.
	Sink Sink
}

// DefaultOptions returns the options matching the producer's player files.
func DefaultOptions() Options {
	return Options{
		Target:               []string{"", "Inventory"},
		AppendRootTerminator: true,
		Format:               container.Auto,
		Level:                container.DefaultLevel,
		CreateBackup:         true,
		Limits:               types.DefaultLimits(),
	}
}

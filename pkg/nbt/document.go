package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/container"
	"github.com/joshuapare/nbtkit/internal/edit"
	"github.com/joshuapare/nbtkit/internal/mmfile"
	"github.com/joshuapare/nbtkit/internal/reader"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Document is a decoded file: the decompressed bytes and the tree decoded
// from them. Node spans index into Raw.
type Document struct {
	Raw    []byte
	Root   *types.Node
	Format Format

	limits     types.Limits
	terminated bool // Raw ends with a terminator appended by Load
}

// Load maps the file at path, unwraps its container and decodes it.
func Load(path string, opts Options) (*Document, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer unmap()

	doc, err := LoadBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// LoadBytes unwraps and decodes file contents held in memory. data is not
// retained.
func LoadBytes(data []byte, opts Options) (*Document, error) {
	raw, f, err := container.DecompressLimit(data, opts.Format, container.DefaultMaxSize)
	if err != nil {
		return nil, err
	}
	doc := &Document{Format: f, limits: opts.Limits}
	if opts.AppendRootTerminator {
		raw = append(raw, 0)
		doc.terminated = true
	}
	doc.Raw = raw

	root, err := reader.DecodeRoot(raw, opts.Limits)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	doc.Root = root
	return doc, nil
}

// Lookup follows path from the document root.
func (d *Document) Lookup(path []string) (*types.Node, error) {
	return Lookup(d.Root, path...)
}

// Rank ranks the children of the list at path by size.
func (d *Document) Rank(path []string) ([]types.ItemEntry, error) {
	list, err := d.Lookup(path)
	if err != nil {
		return nil, err
	}
	return Rank(list)
}

// Verify checks that every node's span re-decodes to the same value.
func (d *Document) Verify() (int, error) {
	return reader.Verify(d.Raw, d.Root, d.limits)
}

// Without returns the file payload with [start, end) removed, ready to be
// compressed. A terminator appended at load time is dropped again. The
// document itself is unchanged and its tree still describes Raw.
func (d *Document) Without(start, end int) ([]byte, *edit.Patch, error) {
	out, p, err := edit.Apply(d.Raw, start, end)
	if err != nil {
		return nil, nil, err
	}
	if d.terminated && end < len(d.Raw) {
		out = out[:len(out)-1]
	}
	return out, p, nil
}

// Encode wraps payload in the container format f, falling back to the
// document's own format for FormatAuto.
func (d *Document) Encode(payload []byte, f Format, level int) ([]byte, error) {
	if f == container.Auto {
		f = d.Format
	}
	return container.Compress(payload, f, level)
}

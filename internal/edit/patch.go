// Package edit removes byte spans from raw buffers. It knows nothing about
// the tree structure: no count or length field anywhere in the buffer is
// adjusted when a span is cut out.
package edit

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// DeleteSpan returns a copy of b with bytes [start, end) removed. Bytes before
// start and from end onwards are carried over unchanged, so
// len(result) == len(b) - (end - start). b itself is not modified.
func DeleteSpan(b []byte, start, end int) ([]byte, error) {
	if !buf.ValidSpan(len(b), start, end) {
		return nil, types.Errorf(types.ErrKindInvalidSpan, "delete", start,
			"span [%d,%d) does not fit buffer of %d bytes", start, end, len(b))
	}
	out := make([]byte, 0, len(b)-(end-start))
	out = append(out, b[:start]...)
	out = append(out, b[end:]...)
	return out, nil
}

// Patch records one span removal so it can be reported or undone.
type Patch struct {
	Start   int    // offset of the first removed byte
	End     int    // offset just past the last removed byte
	Removed []byte // copy of the removed bytes
}

// Size returns the number of bytes the patch removes.
func (p *Patch) Size() int {
	return p.End - p.Start
}

// Apply removes [start, end) from b and returns the shortened buffer together
// with a record of what was cut.
func Apply(b []byte, start, end int) ([]byte, *Patch, error) {
	out, err := DeleteSpan(b, start, end)
	if err != nil {
		return nil, nil, err
	}
	p := &Patch{
		Start:   start,
		End:     end,
		Removed: append([]byte(nil), b[start:end]...),
	}
	return out, p, nil
}

// Revert reinserts the removed bytes into a buffer produced by Apply and
// returns the restored copy.
func (p *Patch) Revert(b []byte) ([]byte, error) {
	if p.Start < 0 || p.Start > len(b) {
		return nil, types.Errorf(types.ErrKindInvalidSpan, "revert", p.Start,
			"insert offset outside buffer of %d bytes", len(b))
	}
	out := make([]byte, 0, len(b)+len(p.Removed))
	out = append(out, b[:p.Start]...)
	out = append(out, p.Removed...)
	out = append(out, b[p.Start:]...)
	return out, nil
}

// String returns a one-line summary suitable for logs.
func (p *Patch) String() string {
	show := p.Removed
	suffix := ""
	if len(show) > 16 {
		show = show[:16]
		suffix = " ..."
	}
	return fmt.Sprintf("delete [%d,%d) %d bytes: % X%s", p.Start, p.End, p.Size(), show, suffix)
}

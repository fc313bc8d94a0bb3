package nbt

import (
	"github.com/joshuapare/nbtkit/internal/edit"
	"github.com/joshuapare/nbtkit/internal/reader"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Patch records one span removal (re-exported for convenience).
type Patch = edit.Patch

// Decode decodes a decompressed buffer as the root compound. The buffer must
// already end with the root terminator; see Options.AppendRootTerminator.
func Decode(raw []byte, limits types.Limits) (*types.Node, error) {
	return reader.DecodeRoot(raw, limits)
}

// DecodeKind decodes one payload of the given kind at the start of raw.
func DecodeKind(raw []byte, kind types.Kind, limits types.Limits) (*types.Node, error) {
	return reader.Decode(raw, kind, limits)
}

// DeleteSpan returns a copy of raw without bytes [start, end). No count or
// length field in raw is updated.
func DeleteSpan(raw []byte, start, end int) ([]byte, error) {
	return edit.DeleteSpan(raw, start, end)
}

// Verify re-decodes every node of root from its own span and reports the
// number of nodes checked. raw must be the buffer root was decoded from.
func Verify(raw []byte, root *types.Node, limits types.Limits) (int, error) {
	return reader.Verify(raw, root, limits)
}

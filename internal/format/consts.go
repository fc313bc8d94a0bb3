// Package format houses the wire-level layout of the tagged binary format:
// field widths, prefix sizes and per-kind minimum payload sizes. It keeps
// those numbers out of the decoder so bounds checks and decoding agree on a
// single source.
package format

import "github.com/joshuapare/nbtkit/pkg/types"

// Layout (all multi-byte numbers big-endian, two's complement):
//
//	Scalar      fixed width, no prefix
//	Byte/Int/Long array
//	            i32 count, count * element width
//	String      i16 byte length, UTF-8 bytes
//	List        u8 element kind, i32 count, count * payload(element kind)
//	Compound    { u8 kind, [i16 name length, name, payload(kind)] }* u8 0
const (
	// TagIDSize is the size of a tag kind byte.
	TagIDSize = 1
	// StringLenSize is the size of a text or field name length prefix.
	StringLenSize = 2
	// CountSize is the size of an array or list element count.
	CountSize = 4
	// ListHeaderSize is the element kind byte plus the count.
	ListHeaderSize = TagIDSize + CountSize
	// EndTag is the compound terminator byte.
	EndTag = byte(types.KindEnd)
)

// scalarWidths holds the fixed payload width of each scalar kind and the
// element width of each array kind. Zero means variable width.
var scalarWidths = [...]int{
	types.KindByte:      1,
	types.KindShort:     2,
	types.KindInt:       4,
	types.KindLong:      8,
	types.KindFloat:     4,
	types.KindDouble:    8,
	types.KindByteArray: 0,
	types.KindString:    0,
	types.KindList:      0,
	types.KindCompound:  0,
	types.KindIntArray:  0,
	types.KindLongArray: 0,
}

// ScalarWidth returns the payload width of a fixed-width kind, or 0 when the
// kind is variable width or not a value kind.
func ScalarWidth(k types.Kind) int {
	if !k.Valid() {
		return 0
	}
	return scalarWidths[k]
}

// ElemWidth returns the element width of an array kind, or 0 for any other
// kind.
func ElemWidth(k types.Kind) int {
	switch k {
	case types.KindByteArray:
		return 1
	case types.KindIntArray:
		return 4
	case types.KindLongArray:
		return 8
	default:
		return 0
	}
}

// MinPayloadSize returns the smallest number of bytes a payload of kind k can
// occupy: an empty string, array, list or compound still carries its prefix
// or terminator. Returns 0 for non-value kinds.
func MinPayloadSize(k types.Kind) int {
	switch k {
	case types.KindByteArray, types.KindIntArray, types.KindLongArray:
		return CountSize
	case types.KindString:
		return StringLenSize
	case types.KindList:
		return ListHeaderSize
	case types.KindCompound:
		return TagIDSize
	default:
		return ScalarWidth(k)
	}
}

// Package testutil builds small fixtures for tests: hand-assembled buffers in
// the tagged binary format and compressed player files on disk.
package testutil

import (
	"encoding/binary"
	"math"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Builder appends raw encodings to a byte slice. It writes exactly what it is
// told; nothing is validated, so tests can assemble malformed input too.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Bytes returns the assembled buffer.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *Builder) Byte(v int8) *Builder {
	b.buf = append(b.buf, byte(v))
	return b
}

func (b *Builder) Short(v int16) *Builder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(v))
	return b
}

func (b *Builder) Int(v int32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(v))
	return b
}

func (b *Builder) Long(v int64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, uint64(v))
	return b
}

func (b *Builder) Float(v float32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, math.Float32bits(v))
	return b
}

func (b *Builder) Double(v float64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// Text writes an i16 length prefix followed by the bytes of s.
func (b *Builder) Text(s string) *Builder {
	b.Short(int16(len(s)))
	b.buf = append(b.buf, s...)
	return b
}

func (b *Builder) ByteArray(v ...int8) *Builder {
	b.Int(int32(len(v)))
	for _, x := range v {
		b.Byte(x)
	}
	return b
}

func (b *Builder) IntArray(v ...int32) *Builder {
	b.Int(int32(len(v)))
	for _, x := range v {
		b.Int(x)
	}
	return b
}

func (b *Builder) LongArray(v ...int64) *Builder {
	b.Int(int32(len(v)))
	for _, x := range v {
		b.Long(x)
	}
	return b
}

// List writes a list header; the caller appends count payloads.
func (b *Builder) List(elem types.Kind, count int32) *Builder {
	b.buf = append(b.buf, byte(elem))
	return b.Int(count)
}

// Field writes a compound field header: tag id then name. The caller
// appends the payload.
func (b *Builder) Field(kind types.Kind, name string) *Builder {
	b.buf = append(b.buf, byte(kind))
	return b.Text(name)
}

// End writes a compound terminator.
func (b *Builder) End() *Builder {
	b.buf = append(b.buf, byte(types.KindEnd))
	return b
}

// Item describes one inventory record in a player file fixture.
type Item struct {
	Slot  int8
	ID    string
	Count int8
	// Lore pads the record with a text field to give it a chosen size.
	Lore string
}

// Player assembles the decompressed bytes of a player file whose wrapper
// compound "" holds an Inventory list of item compounds. Like the files the
// producer writes, the result lacks the trailing root terminator.
func Player(items ...Item) []byte {
	b := NewBuilder()
	b.Field(types.KindCompound, "")
	b.Field(types.KindInt, "DataVersion").Int(3465)
	b.Field(types.KindList, "Inventory").List(types.KindCompound, int32(len(items)))
	for _, it := range items {
		b.Field(types.KindByte, "Slot").Byte(it.Slot)
		b.Field(types.KindString, "id").Text(it.ID)
		b.Field(types.KindByte, "Count").Byte(it.Count)
		if it.Lore != "" {
			b.Field(types.KindCompound, "tag")
			b.Field(types.KindString, "Lore").Text(it.Lore)
			b.End()
		}
		b.End()
	}
	b.Field(types.KindList, "Pos").List(types.KindDouble, 3).Double(0.5).Double(64).Double(-12.5)
	b.End()
	return b.Bytes()
}

// ByteInventory assembles the smallest player-shaped buffer: a wrapper
// compound "" holding only an Inventory list of bytes. The trailing root
// terminator is omitted as in Player.
func ByteInventory(values ...int8) []byte {
	b := NewBuilder()
	b.Field(types.KindCompound, "")
	b.Field(types.KindList, "Inventory").List(types.KindByte, int32(len(values)))
	for _, v := range values {
		b.Byte(v)
	}
	b.End()
	return b.Bytes()
}

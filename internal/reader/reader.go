// Package reader implements the span-tracked decoder. Every node it produces
// records the half-open byte range its payload was read from, which is what
// lets callers cut a sub-tree out of the source buffer without re-encoding.
package reader

import (
	"unicode/utf8"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Decode decodes one payload of the given kind starting at offset 0 of b.
// Trailing bytes after the payload are ignored.
func Decode(b []byte, kind types.Kind, limits types.Limits) (*types.Node, error) {
	n, _, err := DecodeAt(b, 0, kind, limits)
	return n, err
}

// DecodeRoot decodes b as a single compound payload with no preceding tag id
// or name. Producers that omit the root terminator must have it appended by
// the caller first.
func DecodeRoot(b []byte, limits types.Limits) (*types.Node, error) {
	return Decode(b, types.KindCompound, limits)
}

// DecodeAt decodes one payload of kind starting at off and returns the node
// together with the offset just past it.
func DecodeAt(b []byte, off int, kind types.Kind, limits types.Limits) (*types.Node, int, error) {
	if off < 0 || off > len(b) {
		return nil, 0, types.Errorf(types.ErrKindInvalidSpan, "decode", off, "offset outside buffer of %d bytes", len(b))
	}
	d := &decoder{buf: b, off: off, maxDepth: limits.Depth()}
	n, err := d.readValue(kind)
	if err != nil {
		return nil, 0, err
	}
	return n, d.off, nil
}

type decoder struct {
	buf      []byte
	off      int
	depth    int
	maxDepth int
}

// readValue is the only place spans are recorded. Every list element and
// compound field is decoded through it, so composite readers never deal with
// offsets themselves.
func (d *decoder) readValue(kind types.Kind) (*types.Node, error) {
	start := d.off
	v, err := d.readPayload(kind)
	if err != nil {
		return nil, err
	}
	return &types.Node{Kind: kind, Start: start, End: d.off, Value: v}, nil
}

func (d *decoder) readPayload(kind types.Kind) (types.Value, error) {
	switch kind {
	case types.KindByte:
		b, err := d.take("byte", 1)
		if err != nil {
			return nil, err
		}
		return types.Byte(int8(b[0])), nil
	case types.KindShort:
		b, err := d.take("short", 2)
		if err != nil {
			return nil, err
		}
		return types.Short(buf.I16BE(b)), nil
	case types.KindInt:
		b, err := d.take("int", 4)
		if err != nil {
			return nil, err
		}
		return types.Int(buf.I32BE(b)), nil
	case types.KindLong:
		b, err := d.take("long", 8)
		if err != nil {
			return nil, err
		}
		return types.Long(buf.I64BE(b)), nil
	case types.KindFloat:
		b, err := d.take("float", 4)
		if err != nil {
			return nil, err
		}
		return types.Float(buf.F32BE(b)), nil
	case types.KindDouble:
		b, err := d.take("double", 8)
		if err != nil {
			return nil, err
		}
		return types.Double(buf.F64BE(b)), nil
	case types.KindByteArray:
		return d.readByteArray()
	case types.KindString:
		s, err := d.readText("string")
		if err != nil {
			return nil, err
		}
		return types.String(s), nil
	case types.KindList:
		return d.readList()
	case types.KindCompound:
		return d.readCompound()
	case types.KindIntArray:
		return d.readIntArray()
	case types.KindLongArray:
		return d.readLongArray()
	default:
		return nil, types.Errorf(types.ErrKindUnknownTagKind, "value", d.off, "tag id %d is not a value kind", uint8(kind))
	}
}

// take consumes exactly n bytes. On failure the position is left unchanged.
func (d *decoder) take(op string, n int) ([]byte, error) {
	b, ok := buf.Slice(d.buf, d.off, n)
	if !ok {
		return nil, types.Errorf(types.ErrKindUnexpectedEnd, op, d.off,
			"need %d bytes, have %d", n, len(d.buf)-d.off)
	}
	d.off += n
	return b, nil
}

// readCount reads a signed 32-bit element count and rejects negative values.
func (d *decoder) readCount(op string) (int, error) {
	at := d.off
	b, err := d.take(op, format.CountSize)
	if err != nil {
		return 0, err
	}
	n := buf.I32BE(b)
	if n < 0 {
		return 0, types.Errorf(types.ErrKindNegativeLength, op, at, "count %d", n)
	}
	return int(n), nil
}

// reserve checks that count elements of at least elemSize bytes can still be
// present before any storage is allocated for them.
func (d *decoder) reserve(op string, count, elemSize int) error {
	if _, err := buf.CheckRun(len(d.buf), d.off, count, elemSize); err != nil {
		return &types.Error{
			Kind:   types.ErrKindUnexpectedEnd,
			Op:     op,
			Offset: d.off,
			Msg:    "declared element count exceeds remaining input",
			Err:    err,
		}
	}
	return nil
}

func (d *decoder) readText(op string) (string, error) {
	at := d.off
	b, err := d.take(op, format.StringLenSize)
	if err != nil {
		return "", err
	}
	n := int(buf.I16BE(b))
	if n < 0 {
		return "", types.Errorf(types.ErrKindNegativeLength, op, at, "length %d", n)
	}
	raw, err := d.take(op, n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", types.Errorf(types.ErrKindInvalidEncoding, op, at+format.StringLenSize,
			"%d bytes are not valid UTF-8", n)
	}
	return string(raw), nil
}

func (d *decoder) readByteArray() (types.Value, error) {
	count, err := d.readCount("byte array")
	if err != nil {
		return nil, err
	}
	if err := d.reserve("byte array", count, 1); err != nil {
		return nil, err
	}
	raw, _ := d.take("byte array", count)
	out := make(types.ByteArray, count)
	for i, c := range raw {
		out[i] = int8(c)
	}
	return out, nil
}

func (d *decoder) readIntArray() (types.Value, error) {
	count, err := d.readCount("int array")
	if err != nil {
		return nil, err
	}
	w := format.ElemWidth(types.KindIntArray)
	if err := d.reserve("int array", count, w); err != nil {
		return nil, err
	}
	raw, _ := d.take("int array", count*w)
	out := make(types.IntArray, count)
	for i := range out {
		out[i] = buf.I32BE(raw[i*w:])
	}
	return out, nil
}

func (d *decoder) readLongArray() (types.Value, error) {
	count, err := d.readCount("long array")
	if err != nil {
		return nil, err
	}
	w := format.ElemWidth(types.KindLongArray)
	if err := d.reserve("long array", count, w); err != nil {
		return nil, err
	}
	raw, _ := d.take("long array", count*w)
	out := make(types.LongArray, count)
	for i := range out {
		out[i] = buf.I64BE(raw[i*w:])
	}
	return out, nil
}

// readList consumes the element kind byte even for empty lists; the kind is
// only checked when there is at least one element to decode with it.
func (d *decoder) readList() (types.Value, error) {
	at := d.off
	b, err := d.take("list", format.TagIDSize)
	if err != nil {
		return nil, err
	}
	elem := types.Kind(b[0])
	count, err := d.readCount("list")
	if err != nil {
		return nil, err
	}
	if count > 0 && !elem.Valid() {
		return nil, types.Errorf(types.ErrKindUnknownTagKind, "list", at,
			"element tag id %d with %d elements", b[0], count)
	}
	if err := d.reserve("list", count, format.MinPayloadSize(elem)); err != nil {
		return nil, err
	}
	if err := d.enter("list", at); err != nil {
		return nil, err
	}
	defer d.leave()

	items := make([]*types.Node, 0, count)
	for range count {
		n, err := d.readValue(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return types.List{Elem: elem, Items: items}, nil
}

func (d *decoder) readCompound() (types.Value, error) {
	if err := d.enter("compound", d.off); err != nil {
		return nil, err
	}
	defer d.leave()

	fields := types.Compound{}
	for {
		kind, name, done, err := d.readFieldHeader()
		if err != nil {
			return nil, err
		}
		if done {
			return fields, nil
		}
		n, err := d.readValue(kind)
		if err != nil {
			return nil, err
		}
		fields[name] = n
	}
}

// readFieldHeader reads a field's tag id and name. A zero tag id is the
// compound terminator and is reported through done rather than as a kind.
func (d *decoder) readFieldHeader() (kind types.Kind, name string, done bool, err error) {
	at := d.off
	b, err := d.take("compound", format.TagIDSize)
	if err != nil {
		return 0, "", false, err
	}
	if b[0] == format.EndTag {
		return 0, "", true, nil
	}
	kind = types.Kind(b[0])
	if !kind.Valid() {
		return 0, "", false, types.Errorf(types.ErrKindUnknownTagKind, "compound", at,
			"field tag id %d", b[0])
	}
	name, err = d.readText("field name")
	if err != nil {
		return 0, "", false, err
	}
	return kind, name, false, nil
}

func (d *decoder) enter(op string, at int) error {
	d.depth++
	if d.depth > d.maxDepth {
		return types.Errorf(types.ErrKindDepthExceeded, op, at, "nesting deeper than %d", d.maxDepth)
	}
	return nil
}

func (d *decoder) leave() {
	d.depth--
}

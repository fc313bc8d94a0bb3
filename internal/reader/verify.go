package reader

import (
	"math"
	"slices"
	"strconv"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Verify checks that every node under root can be decoded again from its own
// span in isolation, yielding an equal value and consuming the span exactly.
// It returns the number of nodes checked.
//
// src must be the buffer root was decoded from.
func Verify(src []byte, root *types.Node, limits types.Limits) (int, error) {
	v := verifier{src: src, limits: limits}
	if err := v.node(root, ""); err != nil {
		return v.checked, err
	}
	return v.checked, nil
}

type verifier struct {
	src     []byte
	limits  types.Limits
	checked int
}

func (v *verifier) node(n *types.Node, path string) error {
	if n.Start < 0 || n.Start > n.End || n.End > len(v.src) {
		return types.Errorf(types.ErrKindInvalidSpan, path, n.Start, "span [%d,%d) outside buffer of %d bytes",
			n.Start, n.End, len(v.src))
	}
	span := n.Bytes(v.src)
	again, end, err := DecodeAt(span, 0, n.Kind, v.limits)
	if err != nil {
		return &types.Error{Kind: types.ErrKindSpanMismatch, Op: path, Offset: n.Start, Msg: "re-decode failed", Err: err}
	}
	if end != len(span) {
		return types.Errorf(types.ErrKindSpanMismatch, path, n.Start, "re-decode consumed %d of %d bytes", end, len(span))
	}
	if !Equal(n.Value, again.Value) {
		return types.Errorf(types.ErrKindSpanMismatch, path, n.Start, "re-decoded %s differs", n.Kind)
	}
	v.checked++

	switch val := n.Value.(type) {
	case types.List:
		for i, item := range val.Items {
			if err := v.node(item, join(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	case types.Compound:
		for name, field := range val {
			if err := v.node(field, join(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// join builds slash paths. Empty names are kept, so the producer's wrapper
// compound shows up as "//Inventory".
func join(path, seg string) string {
	return path + "/" + seg
}

// Equal reports whether two values are structurally equal. Spans are not
// compared, so a node re-decoded from a sub-slice equals the original. Floats
// compare by bit pattern so NaN payloads round-trip.
func Equal(a, b types.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case types.Byte, types.Short, types.Int, types.Long, types.String:
		return a == b
	case types.Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(types.Float)))
	case types.Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(types.Double)))
	case types.ByteArray:
		return slices.Equal(x, b.(types.ByteArray))
	case types.IntArray:
		return slices.Equal(x, b.(types.IntArray))
	case types.LongArray:
		return slices.Equal(x, b.(types.LongArray))
	case types.List:
		y := b.(types.List)
		if x.Elem != y.Elem || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i].Value, y.Items[i].Value) {
				return false
			}
		}
		return true
	case types.Compound:
		y := b.(types.Compound)
		if len(x) != len(y) {
			return false
		}
		for name, xn := range x {
			yn, ok := y[name]
			if !ok || !Equal(xn.Value, yn.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

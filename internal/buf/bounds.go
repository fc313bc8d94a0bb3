package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false when
// either operand is negative or the product would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckRun validates that count elements of at least elemSize bytes each can
// fit in a buffer of bufLen bytes starting at offset. It returns the offset
// just past the run. For variable-width elements elemSize is a lower bound, so
// a nil error means "not obviously truncated" rather than "fits exactly".
//
// Decoders call this before allocating element storage so a hostile count
// cannot force a large allocation:
//
//	if _, err := buf.CheckRun(len(data), off, int(count), 8); err != nil {
//	    return fmt.Errorf("long array: %w", err)
//	}
func CheckRun(bufLen, offset, count, elemSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// ValidSpan reports whether [start, end) is a well-formed range inside a
// buffer of bufLen bytes.
func ValidSpan(bufLen, start, end int) bool {
	return start >= 0 && start <= end && end <= bufLen
}

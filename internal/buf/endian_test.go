package buf

import (
	"math"
	"testing"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := I16BE(data); got != 0x0123 {
		t.Fatalf("I16BE = 0x%x, want 0x0123", got)
	}
	if got := I32BE(data); got != 0x01234567 {
		t.Fatalf("I32BE = 0x%x, want 0x01234567", got)
	}
	if got := I64BE(data); got != 0x0123456789abcdef {
		t.Fatalf("I64BE = 0x%x, want 0x0123456789abcdef", got)
	}

	short := []byte{0xAA}
	if I16BE(short) != 0 || I32BE(short) != 0 || I64BE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
	if F32BE(short) != 0 || F64BE(short) != 0 {
		t.Fatalf("short float reads should return 0")
	}
}

func TestSignedBigEndian(t *testing.T) {
	if got := I16BE([]byte{0xff, 0xfe}); got != -2 {
		t.Fatalf("I16BE = %d, want -2", got)
	}
	if got := I32BE([]byte{0xff, 0xff, 0xff, 0xff}); got != -1 {
		t.Fatalf("I32BE = %d, want -1", got)
	}
	if got := I64BE([]byte{0x80, 0, 0, 0, 0, 0, 0, 0}); got != math.MinInt64 {
		t.Fatalf("I64BE = %d, want MinInt64", got)
	}
}

func TestFloatBigEndian(t *testing.T) {
	// 1.5 as float32: 0x3FC00000
	if got := F32BE([]byte{0x3f, 0xc0, 0x00, 0x00}); got != 1.5 {
		t.Fatalf("F32BE = %v, want 1.5", got)
	}
	// -2.25 as float64: 0xC002000000000000
	if got := F64BE([]byte{0xc0, 0x02, 0, 0, 0, 0, 0, 0}); got != -2.25 {
		t.Fatalf("F64BE = %v, want -2.25", got)
	}
}

// Package buf contains helpers for endian-safe decoding routines.
package buf

import (
	"encoding/binary"
	"math"
)

// The format stores every multi-byte number big-endian, two's complement.

// I16BE reads a big-endian int16 from b. Returns 0 when b is too short.
func I16BE(b []byte) int16 {
	if len(b) < 2 {
		return 0
	}
	return int16(binary.BigEndian.Uint16(b))
}

// I32BE reads a big-endian int32 from b. Returns 0 when b is too short.
func I32BE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

// I64BE reads a big-endian int64 from b. Returns 0 when b is too short.
func I64BE(b []byte) int64 {
	if len(b) < 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}

// F32BE reads a big-endian IEEE-754 float32 from b. Returns 0 when b is too short.
func F32BE(b []byte) float32 {
	if len(b) < 4 {
		return 0
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

// F64BE reads a big-endian IEEE-754 float64 from b. Returns 0 when b is too short.
func F64BE(b []byte) float64 {
	if len(b) < 8 {
		return 0
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

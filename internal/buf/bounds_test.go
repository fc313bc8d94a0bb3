package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	got, ok := MulOverflowSafe(1<<20, 8)
	require.True(t, ok)
	require.Equal(t, 8<<20, got)

	got, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	require.Zero(t, got)

	_, ok = MulOverflowSafe(math.MaxInt/2+1, 2)
	require.False(t, ok)

	_, ok = MulOverflowSafe(-1, 4)
	require.False(t, ok)
}

func TestCheckRun(t *testing.T) {
	tests := []struct {
		name    string
		bufLen  int
		offset  int
		count   int
		size    int
		wantEnd int
		wantErr bool
	}{
		{name: "exact fit", bufLen: 20, offset: 4, count: 4, size: 4, wantEnd: 20},
		{name: "empty run", bufLen: 4, offset: 4, count: 0, size: 8, wantEnd: 4},
		{name: "one past end", bufLen: 19, offset: 4, count: 4, size: 4, wantErr: true},
		{name: "negative count", bufLen: 100, offset: 0, count: -1, size: 1, wantErr: true},
		{name: "negative offset", bufLen: 100, offset: -1, count: 1, size: 1, wantErr: true},
		{name: "huge count", bufLen: 100, offset: 0, count: math.MaxInt32, size: 8, wantErr: true},
		{name: "overflowing product", bufLen: 100, offset: 0, count: math.MaxInt, size: 8, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CheckRun(tt.bufLen, tt.offset, tt.count, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if got, ok := Slice(data, 5, 0); !ok || len(got) != 0 {
		t.Fatalf("zero-length slice at len should succeed")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}

func TestValidSpan(t *testing.T) {
	require.True(t, ValidSpan(10, 0, 10))
	require.True(t, ValidSpan(10, 3, 3))
	require.False(t, ValidSpan(10, 4, 3))
	require.False(t, ValidSpan(10, -1, 3))
	require.False(t, ValidSpan(10, 0, 11))
}

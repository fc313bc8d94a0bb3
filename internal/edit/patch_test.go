package edit

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/internal/reader"
	"github.com/joshuapare/nbtkit/internal/testutil"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestDeleteSpanLengthLaw(t *testing.T) {
	src := []byte("0123456789abcdef")
	orig := bytes.Clone(src)
	for start := 0; start <= len(src); start++ {
		for end := start; end <= len(src); end++ {
			out, err := DeleteSpan(src, start, end)
			require.NoError(t, err)
			require.Len(t, out, len(src)-(end-start))
			require.Equal(t, src[:start], out[:start], "prefix [%d,%d)", start, end)
			require.Equal(t, src[end:], out[start:], "suffix [%d,%d)", start, end)
		}
	}
	assert.Equal(t, orig, src, "input must not be modified")
}

func TestDeleteSpanInvalid(t *testing.T) {
	src := []byte{1, 2, 3}
	for _, span := range [][2]int{{-1, 1}, {2, 1}, {0, 4}, {4, 4}} {
		_, err := DeleteSpan(src, span[0], span[1])
		require.ErrorIs(t, err, types.ErrInvalidSpan, "%v", span)
	}
}

func TestApplyAndRevert(t *testing.T) {
	src := []byte{10, 11, 12, 13, 14}
	out, p, err := Apply(src, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 13, 14}, out)
	assert.Equal(t, []byte{11, 12}, p.Removed)
	assert.Equal(t, 2, p.Size())

	restored, err := p.Revert(out)
	require.NoError(t, err)
	assert.Equal(t, src, restored)

	_, err = p.Revert([]byte{})
	require.ErrorIs(t, err, types.ErrInvalidSpan)
}

func TestPatchString(t *testing.T) {
	p := &Patch{Start: 4, End: 6, Removed: []byte{0xAB, 0xCD}}
	assert.Equal(t, "delete [4,6) 2 bytes: AB CD", p.String())

	long := &Patch{Start: 0, End: 20, Removed: make([]byte, 20)}
	assert.Contains(t, long.String(), " ...")
}

func inventoryItems(t *testing.T, data []byte) []*types.Node {
	t.Helper()
	root, err := reader.DecodeRoot(data, types.Limits{})
	require.NoError(t, err)
	inv := root.Value.(types.Compound)[""].Value.(types.Compound)["Inventory"]
	return inv.Value.(types.List).Items
}

func TestDeleteInventoryEntry(t *testing.T) {
	data := append(testutil.ByteInventory(5, 7), 0)
	items := inventoryItems(t, data)

	out, err := DeleteSpan(data, items[0].Start, items[0].End)
	require.NoError(t, err)
	assert.Len(t, out, len(data)-1)
	assert.Equal(t, byte(7), out[items[0].Start], "next element slides into the freed slot")
	assert.Equal(t, data[:items[0].Start], out[:items[0].Start])
}

// The list count is not rewritten by a deletion. Decoding the patched buffer
// again therefore reads one element past the real data: the wrapper's
// terminator is taken as the second byte, and the root runs off the end.
func TestDeleteLeavesListCountStale(t *testing.T) {
	data := append(testutil.ByteInventory(5, 7), 0)
	items := inventoryItems(t, data)

	out, err := DeleteSpan(data, items[0].Start, items[0].End)
	require.NoError(t, err)

	countAt := items[0].Start - 4
	assert.Equal(t, uint32(2), binary.BigEndian.Uint32(out[countAt:]), "stored count still claims two elements")

	_, err = reader.DecodeRoot(out, types.Limits{})
	require.ErrorIs(t, err, types.ErrUnexpectedEnd)

	// Decoding the list alone shows the misread.
	listStart := countAt - 1
	list, err := reader.Decode(out[listStart:], types.KindList, types.Limits{})
	require.NoError(t, err)
	got := list.Value.(types.List).Items
	require.Len(t, got, 2)
	assert.Equal(t, types.Byte(7), got[0].Value)
	assert.Equal(t, types.Byte(0), got[1].Value)
}

package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/internal/container"
	"github.com/joshuapare/nbtkit/internal/testutil"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestLoadBytes(t *testing.T) {
	raw := testutil.ByteInventory(5, 7)
	data, err := container.Compress(raw, container.Gzip, container.DefaultLevel)
	require.NoError(t, err)

	doc, err := LoadBytes(data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, container.Gzip, doc.Format)
	assert.Equal(t, append(append([]byte{}, raw...), 0), doc.Raw)
	assert.Equal(t, 0, doc.Root.Start)
	assert.Equal(t, len(doc.Raw), doc.Root.End)

	inv, err := doc.Lookup([]string{"", "Inventory"})
	require.NoError(t, err)
	assert.Equal(t, 15, inv.Start)
	assert.Equal(t, 22, inv.End)

	n, err := doc.Verify()
	require.NoError(t, err)
	assert.Equal(t, 5, n) // root, wrapper, list, two bytes
}

func TestLoadBytesTruncated(t *testing.T) {
	raw := testutil.Player(testutil.Item{Slot: 0, ID: "minecraft:stone", Count: 1})
	opts := DefaultOptions()
	opts.Format = FormatNone

	_, err := LoadBytes(raw[:len(raw)-10], opts)
	require.ErrorIs(t, err, types.ErrUnexpectedEnd)
	assert.Contains(t, err.Error(), "decode:")
}

func TestDocumentWithout(t *testing.T) {
	raw := testutil.ByteInventory(5, 7)
	opts := DefaultOptions()
	opts.Format = FormatNone
	doc, err := LoadBytes(raw, opts)
	require.NoError(t, err)

	out, p, err := doc.Without(21, 22)
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{}, raw[:21]...), raw[22:]...), out)
	assert.Equal(t, []byte{7}, p.Removed)

	// the document still describes the unpatched buffer
	assert.Len(t, doc.Raw, len(raw)+1)

	_, _, err = doc.Without(22, 21)
	require.ErrorIs(t, err, types.ErrInvalidSpan)
}

func TestDocumentEncode(t *testing.T) {
	raw := testutil.ByteInventory(1)
	data, err := container.Compress(raw, container.Zlib, container.DefaultLevel)
	require.NoError(t, err)
	doc, err := LoadBytes(data, DefaultOptions())
	require.NoError(t, err)

	enc, err := doc.Encode(raw, FormatAuto, container.DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, container.Zlib, container.Detect(enc))

	enc, err = doc.Encode(raw, FormatNone, container.DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, raw, enc)
}

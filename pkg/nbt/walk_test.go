package nbt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/internal/testutil"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestWalkOrder(t *testing.T) {
	root := decodeFixture(t, testutil.ByteInventory(5, 7))

	var paths []string
	var kinds []types.Kind
	err := Walk(root, func(path []string, n *types.Node) error {
		paths = append(paths, FormatPath(path))
		kinds = append(kinds, n.Kind)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "/", "//Inventory", "//Inventory/0", "//Inventory/1"}, paths)
	assert.Equal(t, []types.Kind{
		types.KindCompound, types.KindCompound, types.KindList, types.KindByte, types.KindByte,
	}, kinds)
}

func TestWalkSortsFields(t *testing.T) {
	root := decodeFixture(t, testutil.Player())
	var names []string
	err := Walk(root, func(path []string, n *types.Node) error {
		if len(path) == 2 {
			names = append(names, path[1])
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"DataVersion", "Inventory", "Pos"}, names)
}

func TestWalkSkipChildren(t *testing.T) {
	root := decodeFixture(t, testutil.ByteInventory(5, 7))
	visited := 0
	err := Walk(root, func(path []string, n *types.Node) error {
		visited++
		if n.Kind == types.KindList {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, visited)
}

func TestWalkStops(t *testing.T) {
	root := decodeFixture(t, testutil.ByteInventory(5, 7))
	stop := errors.New("stop")
	visited := 0
	err := Walk(root, func(path []string, n *types.Node) error {
		visited++
		if n.Kind == types.KindByte {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 4, visited)
}

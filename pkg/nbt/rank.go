package nbt

import (
	"cmp"
	"slices"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Rank lists the children of a list node ordered by encoded size, largest
// first. Children of equal size keep their list order.
func Rank(list *types.Node) ([]types.ItemEntry, error) {
	items, err := AsList(list)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, types.Errorf(types.ErrKindEmptyList, "rank", list.Start, "list has no elements")
	}
	entries := make([]types.ItemEntry, len(items))
	for i, it := range items {
		entries[i] = types.ItemEntry{Index: i, Size: it.Size(), Start: it.Start, End: it.End}
	}
	slices.SortStableFunc(entries, func(a, b types.ItemEntry) int {
		return cmp.Compare(b.Size, a.Size)
	})
	return entries, nil
}

package nbt

import (
	"errors"
	"slices"
	"strconv"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// SkipChildren may be returned by a WalkFunc to skip the children of the
// current node.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each node. path holds the field names and list
// indices leading to n; it is reused between calls and must be copied if
// kept.
type WalkFunc func(path []string, n *types.Node) error

// Walk visits n and its descendants depth-first. Compound fields are visited
// in name order so output built from a walk is deterministic.
func Walk(n *types.Node, fn WalkFunc) error {
	return walk(nil, n, fn)
}

func walk(path []string, n *types.Node, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	switch v := n.Value.(type) {
	case types.List:
		for i, item := range v.Items {
			if err := walk(append(path, strconv.Itoa(i)), item, fn); err != nil {
				return err
			}
		}
	case types.Compound:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if err := walk(append(path, name), v[name], fn); err != nil {
				return err
			}
		}
	}
	return nil
}

package nbt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// AsCompound returns the fields of a compound node.
func AsCompound(n *types.Node) (types.Compound, error) {
	if n == nil {
		return nil, types.Errorf(types.ErrKindWrongVariant, "compound", types.NoOffset, "nil node")
	}
	c, ok := n.Value.(types.Compound)
	if !ok {
		return nil, wrongVariant("compound", n, types.KindCompound)
	}
	return c, nil
}

// AsList returns the children of a list node in order.
func AsList(n *types.Node) ([]*types.Node, error) {
	if n == nil {
		return nil, types.Errorf(types.ErrKindWrongVariant, "list", types.NoOffset, "nil node")
	}
	l, ok := n.Value.(types.List)
	if !ok {
		return nil, wrongVariant("list", n, types.KindList)
	}
	return l.Items, nil
}

// Field returns the named field of a compound.
func Field(c types.Compound, name string) (*types.Node, error) {
	n, ok := c[name]
	if !ok {
		return nil, types.Errorf(types.ErrKindMissingField, "field", types.NoOffset,
			"no field %q (have %s)", name, fieldNames(c))
	}
	return n, nil
}

func wrongVariant(op string, n *types.Node, want types.Kind) error {
	return types.Errorf(types.ErrKindWrongVariant, op, n.Start, "expected %s, found %s", want, n.Kind)
}

func fieldNames(c types.Compound) string {
	const maxShown = 8
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, strconv.Quote(name))
	}
	slices.Sort(names)
	if len(names) > maxShown {
		return strings.Join(names[:maxShown], ", ") + fmt.Sprintf(" and %d more", len(names)-maxShown)
	}
	if len(names) == 0 {
		return "no fields"
	}
	return strings.Join(names, ", ")
}

// Lookup follows path from n. Each segment names a compound field, or is a
// decimal index when the current node is a list.
func Lookup(n *types.Node, path ...string) (*types.Node, error) {
	cur := n
	for i, seg := range path {
		next, err := step(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", FormatPath(path[:i+1]), err)
		}
		cur = next
	}
	return cur, nil
}

func step(n *types.Node, seg string) (*types.Node, error) {
	if n != nil && n.Kind == types.KindList {
		items, err := AsList(n)
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(items) {
			return nil, types.Errorf(types.ErrKindMissingField, "index", n.Start,
				"no element %q in list of %d", seg, len(items))
		}
		return items[idx], nil
	}
	c, err := AsCompound(n)
	if err != nil {
		return nil, err
	}
	return Field(c, seg)
}

// ParsePath splits a slash path into segments. A leading slash is optional
// and the empty path selects the root. Empty segments are kept because
// field names may be empty: "//Inventory" is the Inventory field of the
// unnamed compound inside the root.
func ParsePath(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(s, "/"), "/")
}

// FormatPath is the inverse of ParsePath.
func FormatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return "/" + strings.Join(path, "/")
}

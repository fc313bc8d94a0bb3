package types

// Node pairs a decoded value with the half-open byte span [Start, End) its
// payload occupies in the source buffer.
//
// The span covers the payload only. For a compound field it excludes the tag
// id byte and the name that the enclosing compound read before delegating,
// so removing Bytes() from the source leaves every sibling header intact.
type Node struct {
	Kind  Kind
	Start int
	End   int
	Value Value
}

// Size returns the number of payload bytes the node occupies.
func (n *Node) Size() int {
	return n.End - n.Start
}

// Bytes returns the node's payload slice of src. src must be the buffer the
// node was decoded from; no copy is made.
func (n *Node) Bytes(src []byte) []byte {
	return src[n.Start:n.End]
}

// ItemEntry describes one child of a list for size ranking. It is derived
// from the child's span and never stored in the tree.
type ItemEntry struct {
	Index int `json:"index"`
	Size  int `json:"size"`
	Start int `json:"start"`
	End   int `json:"end"`
}

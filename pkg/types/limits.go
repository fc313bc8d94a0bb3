package types

// DefaultMaxDepth matches the nesting limit enforced by the producer of the
// files this tool repairs; deeper trees are not loadable there either.
const DefaultMaxDepth = 512

// Limits bounds the work a decode is allowed to do on untrusted input.
type Limits struct {
	// MaxDepth is the maximum list/compound nesting depth. Zero selects
	// DefaultMaxDepth.
	MaxDepth int
}

// DefaultLimits returns the limits used when none are specified.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth}
}

// Depth returns the effective maximum depth.
func (l Limits) Depth() int {
	if l.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return l.MaxDepth
}

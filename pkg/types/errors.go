package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnexpectedEnd   ErrKind = iota // buffer exhausted mid-read
	ErrKindInvalidEncoding                // text bytes are not valid UTF-8
	ErrKindUnknownTagKind                 // tag id outside 1..12 dispatched as a value
	ErrKindNegativeLength                 // count or length field decoded negative
	ErrKindWrongVariant                   // navigator expected a different kind
	ErrKindMissingField                   // compound key or list index absent
	ErrKindEmptyList                      // ranking requested on a list with no children
	ErrKindDepthExceeded                  // nesting deeper than Limits.MaxDepth
	ErrKindInvalidSpan                    // span does not fit the buffer it is applied to
	ErrKindSpanMismatch                   // re-decoding a span disagreed with the tree
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindUnexpectedEnd:
		return "unexpected end"
	case ErrKindInvalidEncoding:
		return "invalid encoding"
	case ErrKindUnknownTagKind:
		return "unknown tag kind"
	case ErrKindNegativeLength:
		return "negative length"
	case ErrKindWrongVariant:
		return "wrong variant"
	case ErrKindMissingField:
		return "missing field"
	case ErrKindEmptyList:
		return "empty list"
	case ErrKindDepthExceeded:
		return "depth exceeded"
	case ErrKindInvalidSpan:
		return "invalid span"
	case ErrKindSpanMismatch:
		return "span mismatch"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// NoOffset marks an Error that is not tied to a buffer position.
const NoOffset = -1

// Error is a typed error with an optional underlying cause.
//
// Op names the reader or accessor that failed ("long", "list", "field").
// Offset is the buffer position where the failing read began, or NoOffset.
type Error struct {
	Kind   ErrKind
	Op     string
	Offset int
	Msg    string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Offset != NoOffset {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrUnexpectedEnd)
// holds for every truncation error regardless of offset or message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrKind, op string, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is comparisons.
var (
	ErrUnexpectedEnd   = &Error{Kind: ErrKindUnexpectedEnd, Offset: NoOffset}
	ErrInvalidEncoding = &Error{Kind: ErrKindInvalidEncoding, Offset: NoOffset}
	ErrUnknownTagKind  = &Error{Kind: ErrKindUnknownTagKind, Offset: NoOffset}
	ErrNegativeLength  = &Error{Kind: ErrKindNegativeLength, Offset: NoOffset}
	ErrWrongVariant    = &Error{Kind: ErrKindWrongVariant, Offset: NoOffset}
	ErrMissingField    = &Error{Kind: ErrKindMissingField, Offset: NoOffset}
	ErrEmptyList       = &Error{Kind: ErrKindEmptyList, Offset: NoOffset}
	ErrDepthExceeded   = &Error{Kind: ErrKindDepthExceeded, Offset: NoOffset}
	ErrInvalidSpan     = &Error{Kind: ErrKindInvalidSpan, Offset: NoOffset}
	ErrSpanMismatch    = &Error{Kind: ErrKindSpanMismatch, Offset: NoOffset}
)

// Package types defines the value model shared by every nbtkit package:
// tag kinds, the decoded value variants, span-carrying nodes, ranking
// entries and the typed errors returned by the decoder and navigator.
//
// Design goals:
//   - A closed set of value variants; a type switch over Value is exhaustive.
//   - Every decoded node remembers the half-open byte span it was read from.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (truncation, encoding, variant, ...).
//
// This package has no dependencies beyond the standard library.
package types

// Package hashing computes the 64-bit hash codes that back rule-driven
// identity. A value contributes to a hash through its canonical textual
// representation, and per-rule contributions are folded together with an
// order-sensitive combiner, so the same values listed in a different rule
// order produce a different code.
package hashing

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Repr returns the canonical textual representation of a value, the
// form that Token hashes. Go-syntax formatting keeps distinct types
// with the same rendering apart: the string "30" and the int 30 have
// different representations and therefore different tokens.
func Repr(v any) string {
	return fmt.Sprintf("%#v", v)
}

// Token returns the 64-bit hash of a single value's representation.
func Token(v any) uint64 {
	return xxh3.HashString(Repr(v))
}

// Combine folds one value token into an accumulated hash code.
//
// The formula is acc ^ (acc + h), evaluated with uint64 wraparound. It
// is not a conventional mixing function, but it is the one identity
// codes are defined by: the combination is non-commutative, and
// callers rely on the exact values it produces. Do not replace it with
// a standard combiner.
func Combine(acc, h uint64) uint64 {
	return acc ^ (acc + h)
}

// Sum combines the tokens of the given values in order, starting from
// a zero accumulator. Sum(a, b) and Sum(b, a) generally differ.
func Sum(values ...any) uint64 {
	var acc uint64
	for _, v := range values {
		acc = Combine(acc, Token(v))
	}

	return acc
}

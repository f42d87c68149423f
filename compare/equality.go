package compare

import (
	"fmt"
	"reflect"
)

// Equality bundles the equality and hash behavior generated from a plain
// list of field names. It is the simpler sibling of Comparator: no
// ordering, no directions, no derived accessors. The hash and caching
// contract is the same.
type Equality[T any] struct {
	rules     []Rule[T]
	recompute bool
}

// NewEquality configures an Equality bundle over the named exported
// fields of T, in the given order. The list must be non-empty and every
// name must resolve, otherwise a configuration error is returned before
// any instance exists. Field order matters to the hash: the same fields
// listed differently produce different codes.
func NewEquality[T any](fields ...string) (*Equality[T], error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no field names given", ErrNoRules)
	}

	rules := make([]Rule[T], 0, len(fields))

	for _, name := range fields {
		rule, err := FieldRule[T](name, Asc)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return &Equality[T]{rules: rules}, nil
}

// Recomputing switches Hash to recompute on every call instead of
// memoizing per instance. Returns the bundle for chaining.
func (e *Equality[T]) Recomputing() *Equality[T] {
	e.recompute = true

	return e
}

// Equal reports whether every listed field holds deeply equal values in
// a and b. Operands of different dynamic types are unequal, never an
// error.
func (e *Equality[T]) Equal(a, b T) bool {
	if reflect.TypeOf(any(a)) != reflect.TypeOf(any(b)) {
		return false
	}

	return equalByRules(e.rules, a, b)
}

// Hash returns the field-derived hash code, memoized per instance under
// the same rules as Comparator.Hash.
func (e *Equality[T]) Hash(v T) uint64 {
	return hashFor(e.rules, e.recompute, v)
}

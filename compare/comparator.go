package compare

import (
	"fmt"
	"reflect"

	"github.com/jojje/comparable/hashing"
)

// Comparator bundles the ordering, equality, and hash behavior generated
// from a rule list. All three derive from the same rules, which keeps
// equality and hashing in agreement: instances that compare equal hash
// identically within a cache lifetime.
//
// The rule list is fixed at construction and never mutated afterward.
type Comparator[T any] struct {
	rules     []Rule[T]
	recompute bool
}

// New configures a Comparator from a flat token list alternating accessor
// and direction, mirroring the declarative form
//
//	New[*Person]("Name", "asc", "Age", "desc")
//
// An accessor token is either a string naming an exported field of T, or
// a func(T) any computing a derived value. A direction token is a
// Direction constant or one of the strings "asc" and "desc". Derived
// accessors are the only option when T is an interface type, since field
// names cannot be resolved against it.
//
// All validation happens here, before any instance exists: an empty
// list, an odd-length list, an invalid direction, a malformed accessor,
// or a target type passed in place of the first rule token each fail
// with the corresponding configuration error.
func New[T any](tokens ...any) (*Comparator[T], error) {
	if len(tokens) == 0 {
		return nil, ErrNoRules
	}

	if _, ok := tokens[0].(reflect.Type); ok {
		return nil, fmt.Errorf("%w: supply accessor and direction arguments first", ErrMisplacedTarget)
	}

	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d tokens", ErrUnpairedRule, len(tokens))
	}

	rules := make([]Rule[T], 0, len(tokens)/2)

	for i := 0; i < len(tokens); i += 2 {
		dir, err := directionToken(tokens[i+1])
		if err != nil {
			return nil, err
		}

		rule, err := accessorToken[T](tokens[i], dir)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return NewRules(rules...)
}

// NewRules configures a Comparator from already-built rules. The list
// must be non-empty and every rule must carry an accessor and a valid
// direction.
func NewRules[T any](rules ...Rule[T]) (*Comparator[T], error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	for _, r := range rules {
		if r.get == nil {
			return nil, fmt.Errorf("%w: rule %q has no accessor", ErrBadAccessor, r.name)
		}

		if r.dir != Asc && r.dir != Desc {
			return nil, fmt.Errorf("%w: rule %q: %d", ErrBadDirection, r.name, r.dir)
		}
	}

	return &Comparator[T]{rules: rules}, nil
}

// Recomputing switches the comparator's Hash to recompute from current
// values on every call instead of memoizing per instance. It returns the
// comparator so it can be chained onto New. The trade is memory for
// repeated hashing cost; hash values themselves are identical either way.
func (c *Comparator[T]) Recomputing() *Comparator[T] {
	c.recompute = true

	return c
}

// Rules returns the number of configured rules.
func (c *Comparator[T]) Rules() int {
	return len(c.rules)
}

// Less reports whether a ranks strictly before b. Rules are walked in
// order; a descending rule swaps the two retrieved values before the
// strict-less test. The first rule whose (possibly swapped) left value is
// strictly less decides, and when every rule ties the result is false:
// the relative order of fully tied instances is undefined, not an error.
//
// Less fails with ErrTypeMismatch when the operands' dynamic types
// differ, and propagates per-rule failures for values that cannot be
// ordered.
func (c *Comparator[T]) Less(a, b T) (bool, error) {
	if err := sameDynamicType(a, b); err != nil {
		return false, err
	}

	for _, r := range c.rules {
		left, right := r.get(a), r.get(b)
		if r.dir.IsDesc() {
			left, right = right, left
		}

		less, err := lessValue(left, right)
		if err != nil {
			return false, fmt.Errorf("rule %s: %w", r, err)
		}

		if less {
			return true, nil
		}
	}

	return false, nil
}

// Equal reports whether every rule retrieves deeply equal values from a
// and b. Direction plays no part in equality. Operands of different
// dynamic types are unequal, never an error.
func (c *Comparator[T]) Equal(a, b T) bool {
	if reflect.TypeOf(any(a)) != reflect.TypeOf(any(b)) {
		return false
	}

	return equalByRules(c.rules, a, b)
}

// Hash returns the instance's rule-derived hash code. By default the
// code is computed once and memoized when the instance carries a
// hashing.Cache cell (see hashing.Cacher); instances without a cell, or
// comparators switched with Recomputing, compute from current values on
// every call.
func (c *Comparator[T]) Hash(v T) uint64 {
	return hashFor(c.rules, c.recompute, v)
}

func directionToken(tok any) (Direction, error) {
	switch d := tok.(type) {
	case Direction:
		if d != Asc && d != Desc {
			return Asc, fmt.Errorf("%w: %d", ErrBadDirection, d)
		}

		return d, nil
	case string:
		return ParseDirection(d)
	default:
		return Asc, fmt.Errorf("%w: %T", ErrBadDirection, tok)
	}
}

func accessorToken[T any](tok any, dir Direction) (Rule[T], error) {
	switch a := tok.(type) {
	case string:
		return FieldRule[T](a, dir)
	case func(T) any:
		return DerivedRule(a, dir), nil
	default:
		return Rule[T]{}, fmt.Errorf("%w: %T", ErrBadAccessor, tok)
	}
}

func equalByRules[T any](rules []Rule[T], a, b T) bool {
	for _, r := range rules {
		if !equalValue(r.get(a), r.get(b)) {
			return false
		}
	}

	return true
}

func hashByRules[T any](rules []Rule[T], v T) uint64 {
	var acc uint64
	for _, r := range rules {
		acc = hashing.Combine(acc, hashing.Token(r.get(v)))
	}

	return acc
}

func hashFor[T any](rules []Rule[T], recompute bool, v T) uint64 {
	if !recompute {
		if holder, ok := any(v).(hashing.Cacher); ok {
			return holder.HashCache().Memoize(func() uint64 {
				return hashByRules(rules, v)
			})
		}
	}

	return hashByRules(rules, v)
}

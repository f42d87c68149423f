package compare

import (
	"bytes"
	"fmt"
	"reflect"
	"time"
)

// lessValue reports whether a ranks strictly before b. The two values
// must share a dynamic type. Ordering is defined for integers, unsigned
// integers, floats, strings, bools (false before true), time.Time, and
// byte slices; anything else fails with ErrNotOrderable.
func lessValue(a, b any) (bool, error) {
	if a == nil && b == nil {
		return false, nil
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() || av.Type() != bv.Type() {
		return false, fmt.Errorf("%w: %T and %T", ErrTypeMismatch, a, b)
	}

	if at, ok := a.(time.Time); ok {
		return at.Before(b.(time.Time)), nil
	}

	if ab, ok := a.([]byte); ok {
		return bytes.Compare(ab, b.([]byte)) < 0, nil
	}

	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return av.Int() < bv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return av.Uint() < bv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return av.Float() < bv.Float(), nil
	case reflect.String:
		return av.String() < bv.String(), nil
	case reflect.Bool:
		return !av.Bool() && bv.Bool(), nil
	default:
		return false, fmt.Errorf("%w: %s", ErrNotOrderable, av.Type())
	}
}

// equalValue reports deep equality of two retrieved values. Values of
// different dynamic types are unequal, never an error.
func equalValue(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// sameDynamicType guards ordering comparisons between operands that do
// not share a concrete type. Only meaningful when T is an interface;
// for a concrete T the check always passes.
func sameDynamicType(a, b any) error {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return fmt.Errorf("%w: %T and %T", ErrTypeMismatch, a, b)
	}

	return nil
}

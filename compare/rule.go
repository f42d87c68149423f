package compare

import (
	"fmt"
	"reflect"
)

// Rule is one normalized (accessor, direction) pair. The accessor is
// resolved to a plain getter function at configuration time, so rule
// evaluation never branches on the accessor's original form.
type Rule[T any] struct {
	name string
	get  func(T) any
	dir  Direction
}

// Direction returns the rule's sort direction.
func (r Rule[T]) Direction() Direction {
	return r.dir
}

func (r Rule[T]) String() string {
	return fmt.Sprintf("%s:%s", r.name, r.dir)
}

// FieldRule builds a rule that reads the named exported field of T.
// The field is resolved through reflection exactly once, here; the
// returned rule's getter is a direct index lookup. T must be a struct
// type or a pointer to one, and the field must exist and be exported,
// otherwise a configuration error is returned.
func FieldRule[T any](name string, dir Direction) (Rule[T], error) {
	get, err := fieldGetter[T](name)
	if err != nil {
		return Rule[T]{}, err
	}

	return Rule[T]{name: name, get: get, dir: dir}, nil
}

// DerivedRule builds a rule whose value is computed by the given function
// rather than read from a field. The function receives the instance and
// must return a value comparable against other instances' derived values.
func DerivedRule[T any](get func(T) any, dir Direction) Rule[T] {
	return Rule[T]{name: "derived", get: get, dir: dir}
}

// fieldGetter resolves a field name against T's struct type eagerly and
// returns a getter bound to the field's index.
func fieldGetter[T any](name string) (func(T) any, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: field name %q requires a struct target, not %s", ErrBadAccessor, name, t)
	}

	field, ok := t.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, t, name)
	}

	if !field.IsExported() {
		return nil, fmt.Errorf("%w: field %q of %s is unexported", ErrUnknownField, name, t)
	}

	index := field.Index

	return func(v T) any {
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}

		return rv.FieldByIndex(index).Interface()
	}, nil
}

// Package compare builds ordering, equality, and hashing behavior for a
// type from a declarative list of (accessor, direction) rules. See the
// package documentation in doc.go.
package compare

// Comparable is a generic interface for types that can compare themselves
// for equality. Types implementing it decide what equality means; the
// generated Equality and Comparator bundles in this package provide the
// same decision from a rule list instead.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values by delegating to the first one's Equals
// method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Package sortable sorts slices with rule-generated comparators or with
// element types that order themselves.
package sortable

import (
	"sort"

	"github.com/jojje/comparable/compare"
)

// Sortable is implemented by types that carry their own equality and
// ordering, the element-driven alternative to a rule-generated
// comparator.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// SliceOf stable-sorts items by their own LessThan.
func SliceOf[T Sortable[T]](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].LessThan(items[j])
	})
}

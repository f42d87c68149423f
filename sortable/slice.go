package sortable

import (
	"sort"

	"github.com/jojje/comparable/compare"
	errors2 "github.com/jojje/comparable/errors"
)

// Slice stable-sorts items with the given comparator. The sort callback
// cannot return an error, so comparison failures are accumulated and
// returned joined after the sort completes; a failed comparison ranks as
// "not less". A nil result means every comparison succeeded.
func Slice[T any](items []T, c *compare.Comparator[T]) error {
	var errs errors2.Collection

	sort.SliceStable(items, func(i, j int) bool {
		less, err := c.Less(items[i], items[j])
		errs.Add(err)

		return less
	})

	return errs.GetError()
}

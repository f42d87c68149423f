package sortable

import (
	"slices"

	"facette.io/natsort"

	"github.com/jojje/comparable/compare"
)

// Strings sorts items in place in natural order, so "a2" ranks before
// "a10". Desc reverses the sorted result.
func Strings(items []string, dir compare.Direction) {
	natsort.Sort(items)

	if dir.IsDesc() {
		slices.Reverse(items)
	}
}

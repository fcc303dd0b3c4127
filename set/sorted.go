package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Sorted returns the elements in ascending order, independent of the
// set's iteration order.
func Sorted[T constraints.Ordered](s *Set[T]) []T {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}

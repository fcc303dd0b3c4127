package set

import (
	"github.com/nhosoya/setflow/orderedmap"
	"github.com/nhosoya/setflow/unionfind"
)

// Classify groups the elements of s by f. The resulting map iterates
// classifier values in order of their first occurrence; every group is a
// new Set sharing s's equivalence relation. s is unchanged.
func Classify[T any, K comparable](s *Set[T], f func(item T) K) *orderedmap.OrderedMap[K, *Set[T]] {
	result := orderedmap.New[K, *Set[T]]()

	s.ForEach(func(item T, _ int) {
		key := f(item)
		group, found := result.Get(key)
		if !found {
			group = NewWith(s.eq)
			result.Put(key, group)
		}
		group.Add(item)
	})

	return result
}

// Divide partitions the elements of s into equivalence classes under rel.
// The relation is closed transitively over a disjoint-set forest, so a
// relation that is not transitive (or not symmetric) as stated by the
// caller still yields a well-defined partition; every unordered pair is
// checked in both argument orders. Partitions are returned as an
// identity-keyed set of new sets; s is unchanged and ownership of the
// partitions passes to the result.
//
// Divide is a package-level function rather than a method: a method whose
// signature mentions Set[*Set[T]] makes every instantiation of Set
// non-terminating (an instantiation cycle), which the compiler rejects.
func Divide[T any](s *Set[T], rel func(a, b T) bool) *Set[*Set[T]] {
	items := s.Items()
	forest := unionfind.New(len(items))
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if rel(items[i], items[j]) || rel(items[j], items[i]) {
				forest.Union(i, j)
			}
		}
	}

	result := NewIdentity[*Set[T]]()
	parts := make(map[int]*Set[T], forest.Count())
	for i, item := range items {
		root := forest.Find(i)
		part, found := parts[root]
		if !found {
			part = NewWith(s.eq)
			parts[root] = part
			result.Add(part)
		}
		part.Add(item)
	}
	return result
}

// DivideBy partitions the elements of s by a unary grouping key. It is
// Classify with the keys dropped: elements mapping to equal keys land in
// the same partition.
func DivideBy[T any, K comparable](s *Set[T], f func(item T) K) *Set[*Set[T]] {
	result := NewIdentity[*Set[T]]()
	Classify(s, f).ForEach(func(_ K, group *Set[T], _ int) {
		result.Add(group)
	})
	return result
}

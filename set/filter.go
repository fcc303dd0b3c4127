package set

import "github.com/denismitr/dll"

type (
	PredicateFn[T any]    func(item T) bool
	TransformFn[T any]    func(item T) T
	ForEachFn[T any]      func(item T, order int)
	ForEachUntilFn[T any] func(item T, order int) (goOn bool)
)

// KeepIf removes every element for which f is false.
func (s *Set[T]) KeepIf(f PredicateFn[T]) *Set[T] {
	s.retain(f)
	return s
}

// DeleteIf removes every element for which f is true.
func (s *Set[T]) DeleteIf(f PredicateFn[T]) *Set[T] {
	s.retain(func(item T) bool { return !f(item) })
	return s
}

// KeepIfNX is KeepIf reporting whether any element was removed.
func (s *Set[T]) KeepIfNX(f PredicateFn[T]) (changed bool) {
	return s.retain(f)
}

// DeleteIfNX is DeleteIf reporting whether any element was removed.
func (s *Set[T]) DeleteIfNX(f PredicateFn[T]) (changed bool) {
	return s.retain(func(item T) bool { return !f(item) })
}

func (s *Set[T]) retain(f PredicateFn[T]) (changed bool) {
	curr := s.list.Head()
	for curr != nil {
		next := curr.Next()
		if !f(curr.Value()) {
			s.unlink(curr)
			changed = true
		}
		curr = next
	}
	return changed
}

// TransformInPlace replaces every element with f(element) and then
// reindexes, collapsing elements whose transforms came out equivalent
// (first occurrence wins).
func (s *Set[T]) TransformInPlace(f TransformFn[T]) *Set[T] {
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		curr.ReplaceValue(f(curr.Value()))
	}
	return s.Reindex()
}

// Reindex rebuilds the hash index from the stored elements, dropping any
// that became equivalent duplicates (first occurrence wins). The index
// cannot observe an element being mutated in place through a pointer, so
// after any such mutation lookups are untrustworthy until Reindex is
// called.
func (s *Set[T]) Reindex() *Set[T] {
	s.buckets = make(map[uint64][]*dll.Element[T], s.count)
	s.count = 0

	curr := s.list.Head()
	for curr != nil {
		next := curr.Next()
		h := s.eq.Hash(curr.Value())
		dup := false
		for _, el := range s.buckets[h] {
			if s.eq.Equal(el.Value(), curr.Value()) {
				dup = true
				break
			}
		}
		if dup {
			s.list.Remove(curr)
		} else {
			s.buckets[h] = append(s.buckets[h], curr)
			s.count++
		}
		curr = next
	}

	s.gen++
	return s
}

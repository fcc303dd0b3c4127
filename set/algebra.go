package set

// Union returns a new set with every element of s followed by every
// element of other not already present. The result uses s's equivalence
// relation; neither operand is modified.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := s.Clone()
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		out.insert(curr.Value())
	}
	return out
}

// Intersection returns a new set with the elements of s that are also in
// other. Membership in other is answered by other's own index, so when the
// operands use different equivalence relations the operation inherits the
// asymmetry documented on Equal.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := NewWith(s.eq)
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if other.Has(curr.Value()) {
			out.insert(curr.Value())
		}
	}
	return out
}

// Difference returns a new set with the elements of s not present in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := NewWith(s.eq)
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if !other.Has(curr.Value()) {
			out.insert(curr.Value())
		}
	}
	return out
}

// SymmetricDifference returns a new set with the elements present in
// exactly one of s and other. It is computed in a single pass over each
// operand, without materializing the union or the intersection.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	out := NewWith(s.eq)
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if !other.Has(curr.Value()) {
			out.insert(curr.Value())
		}
	}
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		if !s.Has(curr.Value()) {
			out.insert(curr.Value())
		}
	}
	return out
}

// Merge adds every element of other to s. Merging a set into itself is a
// no-op.
func (s *Set[T]) Merge(other *Set[T]) *Set[T] {
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		s.insert(curr.Value())
	}
	return s
}

// MergeSlice adds every element of items to s.
func (s *Set[T]) MergeSlice(items []T) *Set[T] {
	for _, item := range items {
		s.insert(item)
	}
	return s
}

// Subtract removes every element of other from s. Subtracting a set from
// itself empties it.
func (s *Set[T]) Subtract(other *Set[T]) *Set[T] {
	if other == s {
		return s.Clear()
	}
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		s.Remove(curr.Value())
	}
	return s
}

// SubtractSlice removes every element of items from s.
func (s *Set[T]) SubtractSlice(items []T) *Set[T] {
	for _, item := range items {
		s.Remove(item)
	}
	return s
}

// Replace makes the contents of s exactly the deduplicated items.
func (s *Set[T]) Replace(items []T) *Set[T] {
	return s.Clear().MergeSlice(items)
}

package set

// SubsetOf reports whether every element of s is contained in other.
// Containment is answered by other's own index; see Equal for the
// cross-relation caveat.
func (s *Set[T]) SubsetOf(other *Set[T]) bool {
	if s.count > other.count {
		return false
	}
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if !other.Has(curr.Value()) {
			return false
		}
	}
	return true
}

// ProperSubsetOf reports whether s is a subset of other and strictly
// smaller.
func (s *Set[T]) ProperSubsetOf(other *Set[T]) bool {
	return s.count < other.count && s.SubsetOf(other)
}

// SupersetOf reports whether every element of other is contained in s,
// under s's equivalence relation.
func (s *Set[T]) SupersetOf(other *Set[T]) bool {
	if s.count < other.count {
		return false
	}
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		if !s.Has(curr.Value()) {
			return false
		}
	}
	return true
}

// ProperSupersetOf reports whether s is a superset of other and strictly
// larger.
func (s *Set[T]) ProperSupersetOf(other *Set[T]) bool {
	return s.count > other.count && s.SupersetOf(other)
}

// DisjointFrom reports whether s and other have no element in common.
func (s *Set[T]) DisjointFrom(other *Set[T]) bool {
	return !s.Intersects(other)
}

// Intersects reports whether s and other share at least one element. It
// walks the smaller operand and returns on the first common element.
func (s *Set[T]) Intersects(other *Set[T]) bool {
	a, b := s, other
	if b.count < a.count {
		a, b = b, a
	}
	for curr := a.list.Head(); curr != nil; curr = curr.Next() {
		if b.Has(curr.Value()) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets have the same size and every element of
// other is contained in s under s's equivalence relation.
//
// When the operands were built with different relations the result need
// not be symmetric: s.Equal(other) and other.Equal(s) each judge
// containment by their own receiver's relation. This asymmetry is part of
// the contract, not resolved silently.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.count != other.count {
		return false
	}
	for curr := other.list.Head(); curr != nil; curr = curr.Next() {
		if !s.Has(curr.Value()) {
			return false
		}
	}
	return true
}

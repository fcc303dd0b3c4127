package set

import "github.com/pkg/errors"

// Flatten returns a new set in which every element that is itself a
// *Set[T] is expanded recursively and merged instead of being kept as a
// single nested element. Nesting is only expressible when T is an
// interface type, in practice Set[any]; for a concrete element type
// Flatten degenerates to a copy.
//
// A set that contains itself, directly or transitively, fails with
// ErrCyclicStructure.
func (s *Set[T]) Flatten() (*Set[T], error) {
	out := NewWith(s.eq)
	if err := s.flattenInto(out, make(map[*Set[T]]struct{})); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Set[T]) flattenInto(out *Set[T], path map[*Set[T]]struct{}) error {
	if _, onPath := path[s]; onPath {
		return errors.Wrapf(ErrCyclicStructure, "cycle at nesting depth %d", len(path))
	}
	path[s] = struct{}{}
	defer delete(path, s)

	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if nested, ok := any(curr.Value()).(*Set[T]); ok {
			if err := nested.flattenInto(out, path); err != nil {
				return err
			}
			continue
		}
		out.insert(curr.Value())
	}
	return nil
}

package set

import "context"

// ForEach applies f to every element in iteration order and returns s for
// chaining. Mutating the set from inside f is a programmer error; the walk
// panics with ErrConcurrentModification when it detects one.
func (s *Set[T]) ForEach(f ForEachFn[T]) *Set[T] {
	gen := s.gen
	order := 0
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		f(curr.Value(), order)
		if s.gen != gen {
			panic(ErrConcurrentModification)
		}
		order++
	}
	return s
}

// ForEachUntil walks elements in iteration order until f returns false.
// The same mutation rule as ForEach applies.
func (s *Set[T]) ForEachUntil(f ForEachUntilFn[T]) *Set[T] {
	gen := s.gen
	order := 0
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		goOn := f(curr.Value(), order)
		if s.gen != gen {
			panic(ErrConcurrentModification)
		}
		if !goOn {
			break
		}
		order++
	}
	return s
}

// Values produces the elements lazily over a channel, in iteration order.
// Calling Values again restarts from the beginning. Mutating the set while
// a consumer is still draining the channel is forbidden; a detected
// mutation or a cancelled ctx closes the channel early.
func (s *Set[T]) Values(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		gen := s.gen
		for curr := s.list.Head(); curr != nil; curr = curr.Next() {
			if ctx.Err() != nil || s.gen != gen {
				return
			}

			select {
			case resultCh <- curr.Value():
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

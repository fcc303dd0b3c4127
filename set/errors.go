package set

import "errors"

var (
	// ErrCyclicStructure reports a set that is nested inside itself,
	// directly or transitively, which makes Flatten non-terminating.
	ErrCyclicStructure = errors.New("set is nested inside itself")

	// ErrConcurrentModification is the panic payload when a set is mutated
	// while an iteration over it is in progress.
	ErrConcurrentModification = errors.New("set modified during iteration")
)

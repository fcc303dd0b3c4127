package set

import (
	"hash/maphash"
	"reflect"
)

// Equivalence decides whether two elements count as the same element for
// deduplication. Hash must be consistent with Equal: elements that compare
// equal must hash alike.
type Equivalence[T any] struct {
	Hash  func(item T) uint64
	Equal func(a, b T) bool
}

// Structural compares elements by value.
func Structural[T comparable]() Equivalence[T] {
	seed := maphash.MakeSeed()
	return Equivalence[T]{
		Hash:  func(item T) uint64 { return maphash.Comparable(seed, item) },
		Equal: func(a, b T) bool { return a == b },
	}
}

// Identity compares elements by address. It is meaningful for pointer-like
// element types (pointers, maps, channels, functions, slice headers): two
// structurally equal but distinct values stay distinct elements.
func Identity[T any]() Equivalence[T] {
	return Equivalence[T]{
		Hash:  func(item T) uint64 { return uint64(pointerOf(item)) },
		Equal: func(a, b T) bool { return pointerOf(a) == pointerOf(b) },
	}
}

func pointerOf[T any](item T) uintptr {
	return reflect.ValueOf(item).Pointer()
}

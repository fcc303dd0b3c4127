package set

import (
	"fmt"
	"strings"

	"github.com/denismitr/dll"
)

// Set is an insertion-ordered collection of unique elements. Uniqueness is
// decided by the Equivalence supplied at construction; New uses structural
// equality. Iteration order is the order of first insertion and is stable
// for as long as the set is not mutated.
//
// A Set is a single-owner value: it performs no internal locking, and
// callers that share one across goroutines must serialize every operation,
// reads included, behind an external lock.
type Set[T any] struct {
	eq      Equivalence[T]
	buckets map[uint64][]*dll.Element[T]
	list    *dll.DoublyLinkedList[T]
	count   int
	gen     uint64
}

// New creates a Set with structural equivalence. Equivalent duplicates in
// items collapse first-wins: the earliest occurrence is the one kept.
func New[T comparable](items ...T) *Set[T] {
	return NewWith(Structural[T](), items...)
}

// NewIdentity creates a Set that deduplicates by address rather than value.
func NewIdentity[T any](items ...T) *Set[T] {
	return NewWith(Identity[T](), items...)
}

// NewWith creates a Set governed by the given equivalence relation.
func NewWith[T any](eq Equivalence[T], items ...T) *Set[T] {
	s := &Set[T]{
		eq:      eq,
		buckets: make(map[uint64][]*dll.Element[T]),
		list:    dll.New[T](),
	}
	for _, item := range items {
		s.insert(item)
	}
	return s
}

// Collect builds a Set from a source slice of a different element type,
// passing every source element through f before insertion. Transformed
// duplicates collapse first-wins.
func Collect[S any, T comparable](src []S, f func(item S) T) *Set[T] {
	return CollectWith(Structural[T](), src, f)
}

// CollectWith is Collect under a caller-supplied equivalence relation.
func CollectWith[S, T any](eq Equivalence[T], src []S, f func(item S) T) *Set[T] {
	s := NewWith(eq)
	for _, item := range src {
		s.insert(f(item))
	}
	return s
}

// Clone returns an independent copy sharing the equivalence relation.
func (s *Set[T]) Clone() *Set[T] {
	clone := NewWith(s.eq)
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		clone.insert(curr.Value())
	}
	return clone
}

// Add inserts item unless an equivalent element is already present.
func (s *Set[T]) Add(item T) *Set[T] {
	s.insert(item)
	return s
}

// AddNX inserts item and reports whether the set changed; false means an
// equivalent element was already there.
func (s *Set[T]) AddNX(item T) (added bool) {
	return s.insert(item)
}

// Remove deletes the element equivalent to item, if any.
func (s *Set[T]) Remove(item T) *Set[T] {
	if el := s.find(item); el != nil {
		s.unlink(el)
	}
	return s
}

// RemoveNX deletes the element equivalent to item and reports whether the
// set changed.
func (s *Set[T]) RemoveNX(item T) (removed bool) {
	el := s.find(item)
	if el == nil {
		return false
	}
	s.unlink(el)
	return true
}

// Clear removes every element.
func (s *Set[T]) Clear() *Set[T] {
	s.buckets = make(map[uint64][]*dll.Element[T])
	s.list = dll.New[T]()
	s.count = 0
	s.gen++
	return s
}

// Has reports whether an element equivalent to item is present.
func (s *Set[T]) Has(item T) bool {
	return s.find(item) != nil
}

func (s *Set[T]) Len() int {
	return s.count
}

func (s *Set[T]) IsEmpty() bool {
	return s.count == 0
}

// Items returns a snapshot of all elements in iteration order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.count)
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value())
	}
	return items
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString("{")
	i := 0
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		if i != 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", curr.Value())
		i++
	}
	b.WriteString("}")
	return b.String()
}

func (s *Set[T]) find(item T) *dll.Element[T] {
	for _, el := range s.buckets[s.eq.Hash(item)] {
		if s.eq.Equal(el.Value(), item) {
			return el
		}
	}
	return nil
}

func (s *Set[T]) insert(item T) bool {
	if s.find(item) != nil {
		return false
	}

	el := dll.NewElement(item)
	h := s.eq.Hash(item)
	s.buckets[h] = append(s.buckets[h], el)
	s.list.PushTail(el)
	s.count++
	s.gen++
	return true
}

func (s *Set[T]) unlink(el *dll.Element[T]) {
	h := s.eq.Hash(el.Value())
	bucket := s.buckets[h]
	for i := range bucket {
		if bucket[i] == el {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket[last] = nil
			if last == 0 {
				delete(s.buckets, h)
			} else {
				s.buckets[h] = bucket[:last]
			}
			break
		}
	}

	s.list.Remove(el)
	s.count--
	s.gen++
}

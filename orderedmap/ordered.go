// Package orderedmap provides a hash map that iterates entries in
// insertion order.
package orderedmap

import (
	"context"

	"github.com/denismitr/dll"
)

type (
	// Pair is a single key/value entry.
	Pair[K comparable, V any] struct {
		Key   K
		Value V
	}

	ForEachFn[K comparable, V any] func(key K, value V, order int)
	LessFn[K comparable, V any]    func(a, b Pair[K, V]) (less bool)

	// OrderedMap maps keys to values and remembers the order in which keys
	// were first inserted. Like the rest of the module it performs no
	// internal locking.
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[Pair[K, V]]
		list *dll.DoublyLinkedList[Pair[K, V]]
	}
)

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[Pair[K, V]]),
		list: dll.New[Pair[K, V]](),
	}
}

// Put inserts or overwrites the value under key and reports whether the
// key was new. An overwritten key keeps its original position.
func (om *OrderedMap[K, V]) Put(key K, value V) (added bool) {
	existing, found := om.m[key]
	if found {
		existing.ReplaceValue(Pair[K, V]{Key: key, Value: value})
		return false
	}

	el := dll.NewElement(Pair[K, V]{Key: key, Value: value})
	om.m[key] = el
	om.list.PushTail(el)
	return true
}

// PutNX inserts only if key is absent and reports whether it did.
func (om *OrderedMap[K, V]) PutNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	el := dll.NewElement(Pair[K, V]{Key: key, Value: value})
	om.m[key] = el
	om.list.PushTail(el)
	return true
}

func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return zero[V](), false
	}
	return el.Value().Value, true
}

// MustGet returns the value under key, or the zero value when absent.
func (om *OrderedMap[K, V]) MustGet(key K) V {
	v, _ := om.Get(key)
	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

// Remove deletes key and reports whether it was present.
func (om *OrderedMap[K, V]) Remove(key K) (found bool) {
	el, exists := om.m[key]
	if !exists {
		return false
	}

	delete(om.m, key)
	om.list.Remove(el)
	return true
}

// HasRemove deletes key and returns the value it held.
func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	el, exists := om.m[key]
	if !exists {
		return zero[V](), false
	}

	v := el.Value().Value
	delete(om.m, key)
	om.list.Remove(el)
	return v, true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

// Keys returns the keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		keys = append(keys, curr.Value().Key)
	}
	return keys
}

// Values returns the values in key insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		values = append(values, curr.Value().Value)
	}
	return values
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		f(curr.Value().Key, curr.Value().Value, order)
		order++
	}
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := New[K, V]()
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		result.Put(curr.Value().Key, curr.Value().Value)
	}
	return result
}

// SortBy returns a clone whose iteration order is sorted by less.
func (om *OrderedMap[K, V]) SortBy(less LessFn[K, V]) *OrderedMap[K, V] {
	clone := om.Clone()
	clone.list.Sort(dll.LessFn[Pair[K, V]](less))
	return clone
}

// Pairs produces the entries lazily over a channel, in insertion order.
func (om *OrderedMap[K, V]) Pairs(ctx context.Context) <-chan Pair[K, V] {
	resultCh := make(chan Pair[K, V])

	go func() {
		defer close(resultCh)

		for curr := om.list.Head(); curr != nil; curr = curr.Next() {
			if ctx.Err() != nil {
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

func zero[T any]() T {
	var result T
	return result
}

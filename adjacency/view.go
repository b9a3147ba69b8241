// File: view.go
// Role: Read-only windows over the store's insertion-ordered sets.
// Determinism:
//   - Iteration follows insertion order of the underlying set.
// Concurrency:
//   - A View aliases store memory. Read it only while the store is not being
//     mutated (under the same lock acquisition that produced it).

package adjacency

import "iter"

// View is a read-only, insertion-ordered window over a set held by a Store.
//
// A View reflects the set at the moment it was taken; later insertions are not
// visible through it, neither by iteration nor by Contains. The zero View is
// empty.
type View[T comparable] struct {
	items []T
	pos   func(T) (int, bool)
}

// newView wraps items with a position lookup into the full underlying
// sequence. A nil lookup falls back to a linear scan of items.
func newView[T comparable](items []T, pos func(T) (int, bool)) View[T] {
	return View[T]{items: items, pos: pos}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return len(v.items) }

// Contains reports whether x belongs to the viewed set. Elements inserted
// after the view was taken sit past its end and are reported absent.
// Complexity: O(1) expected for store-backed views.
func (v View[T]) Contains(x T) bool {
	if v.pos != nil {
		i, ok := v.pos(x)

		return ok && i < len(v.items)
	}
	for _, it := range v.items {
		if it == x {
			return true
		}
	}

	return false
}

// At returns the i-th element in insertion order. It panics if i is out of range.
func (v View[T]) At(i int) T { return v.items[i] }

// All returns an iterator over the elements in insertion order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range v.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the elements in insertion order.
// The copy is safe to keep after the producing lock is released.
func (v View[T]) Slice() []T {
	if len(v.items) == 0 {
		return []T{}
	}
	out := make([]T, len(v.items))
	copy(out, v.items)

	return out
}

package dynarray

import "iter"

// Enumerable is the read-only surface satisfied by [DynamicArray][T].
//
// [DynamicArray.Concat] accepts an Enumerable so callers can append from
// any ordered source, not only another *DynamicArray.
//
// Portability note: this maps to a read-only Sequence protocol in Python
// (__len__/__getitem__/__iter__), ReadonlyArray<T> in TypeScript, or a
// slice view (&[T]) in Rust.
type Enumerable[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Get returns the element at idx or [ErrIndexOutOfRange].
	Get(idx int) (T, error)

	// ToSlice returns a copy of the elements in order.
	ToSlice() []T

	// All returns an iterator over the elements in order.
	All() iter.Seq[T]
}

var _ Enumerable[int] = (*DynamicArray[int])(nil)

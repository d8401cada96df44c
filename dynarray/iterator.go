package dynarray

import "iter"

// Iterator is a cursor over a [DynamicArray] in index order.
//
// Each call to [DynamicArray.Iterator] returns an independent cursor
// starting at index 0. Adding, inserting or removing elements while an
// iterator is in use is undefined behaviour: the iterator may skip or
// repeat elements.
//
// Portability note: in Python this is the object returned by __iter__
// (Next maps to __next__ raising StopIteration); in Java it is
// Iterator<T> with hasNext/next; in Rust, an Iterator over &T.
type Iterator[T any] struct {
	a   *DynamicArray[T]
	pos int
}

// Iterator returns a new cursor positioned before the first element.
func (a *DynamicArray[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{a: a}
}

// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= it.a.n {
		var zero T
		return zero, false
	}
	elem := it.a.buf[it.pos]
	it.pos++
	return elem, true
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool { return it.pos < it.a.n }

// All returns an iterator over the elements in order. Every range over the
// result starts a fresh cursor. The same mutation caveat as [Iterator]
// applies.
//
//	for v := range a.All() {
//	    fmt.Println(v)
//	}
func (a *DynamicArray[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed returns an iterator over (index, element) pairs in order.
func (a *DynamicArray[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, element) pairs from the last
// element to the first.
func (a *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.n - 1; i >= 0; i-- {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

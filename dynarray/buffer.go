package dynarray

import (
	"fmt"
	"math"
)

// allocate returns a fresh block of exactly capacity zeroed slots.
// An allocation failure is a runtime panic and is not recoverable.
func allocate[T any](capacity int) []T {
	return make([]T, capacity)
}

// ensure lazily allocates the initial buffer so the zero DynamicArray is
// usable.
func (a *DynamicArray[T]) ensure() {
	if a.buf == nil {
		a.buf = allocate[T](DefaultInitialCapacity)
	}
}

// resize moves the live elements into a new buffer of newCap slots.
// Callers guarantee newCap >= a.n and newCap >= 1.
func (a *DynamicArray[T]) resize(newCap int) {
	b := allocate[T](newCap)
	copy(b, a.buf[:a.n])
	a.buf = b
}

// growIfFull doubles the capacity when no free slot is left.
func (a *DynamicArray[T]) growIfFull() {
	a.ensure()
	if a.n == len(a.buf) {
		a.resize(2 * len(a.buf))
	}
}

// Capacity returns the number of allocated slots.
func (a *DynamicArray[T]) Capacity() int {
	a.ensure()
	return len(a.buf)
}

// Resize reallocates the backing buffer to exactly newCapacity slots,
// keeping the live elements in order.
//
// Resize never truncates: it returns [ErrInvalidCapacity] and leaves the
// array untouched when newCapacity is below Len() or below 1.
func (a *DynamicArray[T]) Resize(newCapacity int) error {
	if newCapacity < 1 || newCapacity < a.n {
		return fmt.Errorf("%w: cannot resize to %d with %d live elements",
			ErrInvalidCapacity, newCapacity, a.n)
	}
	a.resize(newCapacity)
	return nil
}

// Grow guarantees room for n more elements without further reallocation.
// When the buffer is too small it is resized once to the larger of twice
// the current capacity and Len()+n.
// Returns [ErrInvalidCapacity] if n is negative or Len()+n overflows int.
func (a *DynamicArray[T]) Grow(n int) error {
	if n < 0 || n > math.MaxInt-a.n {
		return fmt.Errorf("%w: cannot grow by %d with %d live elements",
			ErrInvalidCapacity, n, a.n)
	}
	a.ensure()
	if n <= len(a.buf)-a.n {
		return nil
	}
	a.resize(max(2*len(a.buf), a.n+n))
	return nil
}

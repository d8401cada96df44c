package dynarray

import (
	"fmt"
	"reflect"
)

// DynamicArray is a growable, contiguous buffer of T with explicit length
// and capacity.
//
// Appending is amortized O(1): when the buffer is full its capacity is
// doubled. Capacity never shrinks except through [DynamicArray.FromSlice].
// The buffer is owned by the array; no method hands out a reference into
// it, and [DynamicArray.ToSlice] returns a copy.
//
// # Creating an array
//
//	a := dynarray.New[int]()                       // capacity 1, == equality
//	a := dynarray.From([]string{"a", "b", "c"})    // copied
//	a := dynarray.NewFunc(func(x, y []byte) bool { // custom equality
//	    return bytes.Equal(x, y)
//	})
//
// The zero value is an empty array ready to use; it compares elements
// with [reflect.DeepEqual].
//
// # Concurrency
//
// A DynamicArray is not safe for concurrent use. Callers sharing one
// across goroutines must guard every call with their own lock.
type DynamicArray[T any] struct {
	buf   []T
	n     int
	equal func(a, b T) bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty array with capacity 1 that compares elements with ==.
func New[T comparable]() *DynamicArray[T] {
	return &DynamicArray[T]{
		buf:   allocate[T](DefaultInitialCapacity),
		equal: func(a, b T) bool { return a == b },
	}
}

// NewWithOptions creates an empty array configured by opts.
// Returns [ErrInvalidCapacity] if opts.InitialCapacity is below 1.
func NewWithOptions[T comparable](opts Options) (*DynamicArray[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &DynamicArray[T]{
		buf:   allocate[T](opts.InitialCapacity),
		equal: func(a, b T) bool { return a == b },
	}, nil
}

// NewFunc creates an empty array with capacity 1 for element types that are
// not comparable with ==. eq is used by Member, Index and RemoveByValue;
// a nil eq falls back to [reflect.DeepEqual].
func NewFunc[T any](eq func(a, b T) bool) *DynamicArray[T] {
	return &DynamicArray[T]{
		buf:   allocate[T](DefaultInitialCapacity),
		equal: eq,
	}
}

// NewFuncWithOptions is [NewFunc] configured by opts.
func NewFuncWithOptions[T any](eq func(a, b T) bool, opts Options) (*DynamicArray[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &DynamicArray[T]{
		buf:   allocate[T](opts.InitialCapacity),
		equal: eq,
	}, nil
}

// From creates an array holding a copy of items, with capacity
// max(1, len(items)).
func From[T comparable](items []T) *DynamicArray[T] {
	return New[T]().FromSlice(items)
}

// Clone returns an independent array with the same elements, capacity and
// equality function.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	a.ensure()
	b := &DynamicArray[T]{buf: allocate[T](len(a.buf)), n: a.n, equal: a.equal}
	copy(b.buf, a.buf[:a.n])
	return b
}

// ─────────────────────────────────────────────────────────────────────────────
// Access & query
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of live elements.
func (a *DynamicArray[T]) Len() int { return a.n }

// Size is an alias for [DynamicArray.Len].
func (a *DynamicArray[T]) Size() int { return a.n }

// IsEmpty reports whether the array holds no elements.
func (a *DynamicArray[T]) IsEmpty() bool { return a.n == 0 }

// Get returns the element at idx.
// Returns [ErrIndexOutOfRange] unless 0 <= idx < Len().
func (a *DynamicArray[T]) Get(idx int) (T, error) {
	if err := a.checkIndex(idx, a.n); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[idx], nil
}

// Member reports whether any live element equals elem.
func (a *DynamicArray[T]) Member(elem T) bool {
	return a.Index(elem) >= 0
}

// Index returns the index of the first element equal to elem, or -1.
func (a *DynamicArray[T]) Index(elem T) int {
	eq := a.eq()
	for i := 0; i < a.n; i++ {
		if eq(a.buf[i], elem) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends elem at index Len(), doubling the capacity first when the
// buffer is full.
func (a *DynamicArray[T]) Add(elem T) {
	a.growIfFull()
	a.buf[a.n] = elem
	a.n++
}

// Insert places elem at index k and shifts [k, Len()) one slot to the
// right. k == Len() appends.
// Returns [ErrIndexOutOfRange] unless 0 <= k <= Len().
func (a *DynamicArray[T]) Insert(k int, elem T) error {
	if err := a.checkIndex(k, a.n+1); err != nil {
		return err
	}
	a.growIfFull()
	copy(a.buf[k+1:a.n+1], a.buf[k:a.n])
	a.buf[k] = elem
	a.n++
	return nil
}

// Set replaces the element at idx.
// Returns [ErrIndexOutOfRange] unless 0 <= idx < Len().
func (a *DynamicArray[T]) Set(idx int, elem T) error {
	if err := a.checkIndex(idx, a.n); err != nil {
		return err
	}
	a.buf[idx] = elem
	return nil
}

// RemoveByIndex deletes the element at idx, shifting the tail one slot to
// the left. The vacated last slot is zeroed.
// Returns [ErrIndexOutOfRange] unless 0 <= idx < Len().
func (a *DynamicArray[T]) RemoveByIndex(idx int) error {
	if err := a.checkIndex(idx, a.n); err != nil {
		return err
	}
	copy(a.buf[idx:a.n-1], a.buf[idx+1:a.n])
	a.n--
	var zero T
	a.buf[a.n] = zero
	return nil
}

// RemoveByValue deletes the first element equal to value.
// Returns [ErrValueNotFound] when no element matches.
func (a *DynamicArray[T]) RemoveByValue(value T) error {
	k := a.Index(value)
	if k < 0 {
		return fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	return a.RemoveByIndex(k)
}

// Pop removes and returns the last element.
// Returns [ErrEmptyArray] if the array is empty.
func (a *DynamicArray[T]) Pop() (T, error) {
	var zero T
	if a.n == 0 {
		return zero, ErrEmptyArray
	}
	last := a.buf[a.n-1]
	a.n--
	a.buf[a.n] = zero
	return last, nil
}

// Reverse replaces the contents with the same elements in reverse order.
// The new buffer keeps the current capacity. Returns a for chaining.
func (a *DynamicArray[T]) Reverse() *DynamicArray[T] {
	a.ensure()
	b := allocate[T](len(a.buf))
	for k := 0; k < a.n; k++ {
		b[k] = a.buf[a.n-1-k]
	}
	a.buf = b
	return a
}

// Empty sets the length to 0 and returns a for chaining.
//
// Capacity is kept and the old slots are not cleared: they stay
// referenced until overwritten by later additions.
func (a *DynamicArray[T]) Empty() *DynamicArray[T] {
	a.n = 0
	return a
}

// Concat appends every element of other, in order, and returns a.
// other is only read. Concatenating an array with itself appends a copy of
// its original elements. A nil other, including a nil *DynamicArray, is
// treated as empty.
func (a *DynamicArray[T]) Concat(other Enumerable[T]) *DynamicArray[T] {
	if other == nil {
		return a
	}
	if d, ok := other.(*DynamicArray[T]); ok && d == nil {
		return a
	}
	for _, elem := range other.ToSlice() {
		a.Add(elem)
	}
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the live elements in index order.
func (a *DynamicArray[T]) ToSlice() []T {
	out := make([]T, a.n)
	copy(out, a.buf[:a.n])
	return out
}

// FromSlice replaces the whole state of a with a copy of items.
// The new capacity is max(1, len(items)). Returns a for chaining.
func (a *DynamicArray[T]) FromSlice(items []T) *DynamicArray[T] {
	b := allocate[T](max(1, len(items)))
	copy(b, items)
	a.buf = b
	a.n = len(items)
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// checkIndex validates 0 <= idx < limit.
func (a *DynamicArray[T]) checkIndex(idx, limit int) error {
	if idx < 0 || idx >= limit {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, idx, a.n)
	}
	return nil
}

func (a *DynamicArray[T]) eq() func(x, y T) bool {
	if a.equal != nil {
		return a.equal
	}
	return func(x, y T) bool { return reflect.DeepEqual(x, y) }
}

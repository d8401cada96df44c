package dynarray

// Map replaces every live element with fn(element), in index order.
// A nil fn leaves the array unchanged. Returns a for chaining.
func (a *DynamicArray[T]) Map(fn func(T) T) *DynamicArray[T] {
	if fn == nil {
		return a
	}
	for i := 0; i < a.n; i++ {
		a.buf[i] = fn(a.buf[i])
	}
	return a
}

// Filter keeps only the elements for which pred returns true, preserving
// their relative order. Slots vacated at the tail are zeroed.
// A nil pred or an empty array is a no-op. Returns a for chaining.
func (a *DynamicArray[T]) Filter(pred func(T) bool) *DynamicArray[T] {
	if a.n == 0 || pred == nil {
		return a
	}
	kept := 0
	for i := 0; i < a.n; i++ {
		if pred(a.buf[i]) {
			a.buf[kept] = a.buf[i]
			kept++
		}
	}
	clear(a.buf[kept:a.n])
	a.n = kept
	return a
}

// Reduce folds the elements left to right with fn.
//
// With a seed (initial[0]) the result is fn(...fn(fn(seed, e0), e1)..., en).
// Without a seed Reduce returns the first element as-is and does not call
// fn at all; use [Fold] for a conventional fold. Reduce without a seed on
// an empty array returns [ErrEmptyArray], whether or not fn is nil.
// A nil fn with a seed returns the zero value.
//
//	sum, _ := dynarray.From([]int{1, 12, 3}).Reduce(func(acc, x int) int {
//	    return acc + x
//	}, 0) // 16
func (a *DynamicArray[T]) Reduce(fn func(acc, elem T) T, initial ...T) (T, error) {
	var zero T
	if len(initial) == 0 {
		if a.n == 0 {
			return zero, ErrEmptyArray
		}
		return a.buf[0], nil
	}
	if fn == nil {
		return zero, nil
	}
	acc := initial[0]
	for i := 0; i < a.n; i++ {
		acc = fn(acc, a.buf[i])
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-changing operations
//
// Methods cannot introduce type parameters, so operations whose result type
// differs from T are package-level functions.
// ─────────────────────────────────────────────────────────────────────────────

// MapTo applies fn to every element of a and returns the results in a new
// array. The new array compares elements with [reflect.DeepEqual]; use
// [DynamicArray.FromSlice] on a [New] array for == semantics.
// A nil fn returns an empty array.
//
//	labels := dynarray.MapTo(a, strconv.Itoa)
func MapTo[T, U any](a *DynamicArray[T], fn func(T) U) *DynamicArray[U] {
	if fn == nil {
		return &DynamicArray[U]{buf: allocate[U](DefaultInitialCapacity)}
	}
	out := allocate[U](max(1, a.n))
	for i := 0; i < a.n; i++ {
		out[i] = fn(a.buf[i])
	}
	return &DynamicArray[U]{buf: out, n: a.n}
}

// Fold reduces a to a single value of type A, starting from initial.
// A nil fn returns initial.
//
//	total := dynarray.Fold(orders, func(sum float64, o Order) float64 {
//	    return sum + o.Amount
//	}, 0)
func Fold[T, A any](a *DynamicArray[T], fn func(A, T) A, initial A) A {
	if fn == nil {
		return initial
	}
	acc := initial
	for i := 0; i < a.n; i++ {
		acc = fn(acc, a.buf[i])
	}
	return acc
}

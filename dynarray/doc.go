// Package dynarray provides DynamicArray, a generic resizable array with
// explicit capacity control.
//
// # Overview
//
// [DynamicArray][T] owns a contiguous buffer and tracks the number of live
// elements separately from the number of allocated slots. Appends are
// amortized O(1): a full buffer is reallocated at twice its capacity.
//
//	a := dynarray.New[int]()
//	a.Add(55)
//	a.Add(15)
//	_ = a.Set(1, 2)
//	a.ToSlice() // → [55 2]
//	a.Capacity() // → 2
//
// # Errors
//
// Operations that can fail return one of the sentinel errors in this
// package, usually wrapped with the offending index or capacity. A failed
// call never leaves the array in a modified state.
//
// # In-place functional operations
//
// [DynamicArray.Map], [DynamicArray.Filter] and [DynamicArray.Reduce] work
// on the array itself and return it for chaining:
//
//	odd := dynarray.From([]int{1, 12, 3, 98, 5}).
//	    Filter(func(n int) bool { return n%2 != 0 }).
//	    ToSlice() // → [1 3 5]
//
// Operations that change the element or accumulator type are package-level
// functions, because methods cannot declare type parameters: [MapTo] and
// [Fold].
//
// # Iteration
//
// [DynamicArray.Iterator] returns an explicit cursor; [DynamicArray.All],
// [DynamicArray.Indexed] and [DynamicArray.Backward] return range-over-func
// sequences. Mutating an array while iterating over it is undefined.
//
// # Encoding
//
// A *DynamicArray encodes as a plain JSON array or YAML sequence of its live
// elements, and decodes with [DynamicArray.FromSlice] semantics.
package dynarray

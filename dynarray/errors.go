package dynarray

import "errors"

// Sentinel errors returned by DynamicArray operations.
//
// Errors carrying an index or capacity are wrapped with [fmt.Errorf], so
// compare them with [errors.Is]:
//
//	if err := a.Set(7, x); errors.Is(err, dynarray.ErrIndexOutOfRange) {
//	    // 7 is not a live index
//	}
var (
	// ErrIndexOutOfRange is returned when an index is outside the valid
	// range of the operation: [0, Len()) for Get, Set and RemoveByIndex,
	// [0, Len()] for Insert.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrValueNotFound is returned by RemoveByValue when no element equals
	// the target.
	ErrValueNotFound = errors.New("dynarray: value not found")

	// ErrEmptyArray is returned when an operation needs at least one element,
	// such as Reduce without a seed or Pop.
	ErrEmptyArray = errors.New("dynarray: operation on empty array")

	// ErrInvalidCapacity is returned when a requested capacity is below 1 or
	// cannot hold the live elements.
	ErrInvalidCapacity = errors.New("dynarray: invalid capacity")
)

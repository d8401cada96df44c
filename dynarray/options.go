package dynarray

import "fmt"

// DefaultInitialCapacity is the number of slots allocated by [New].
const DefaultInitialCapacity = 1

// Options configures a [DynamicArray] built with [NewWithOptions] or
// [NewFuncWithOptions].
type Options struct {
	// InitialCapacity is the number of slots allocated up front.
	// Must be at least 1. Default: [DefaultInitialCapacity].
	InitialCapacity int
}

// DefaultOptions returns Options with [DefaultInitialCapacity].
func DefaultOptions() Options {
	return Options{InitialCapacity: DefaultInitialCapacity}
}

func (o Options) validate() error {
	if o.InitialCapacity < 1 {
		return fmt.Errorf("%w: initial capacity %d must be at least 1",
			ErrInvalidCapacity, o.InitialCapacity)
	}
	return nil
}

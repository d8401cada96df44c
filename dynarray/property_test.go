package dynarray_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hasbyte1/go-dynarray/dynarray"
)

func drawInts(t *rapid.T, label string) []int {
	return rapid.SliceOf(rapid.Int()).Draw(t, label)
}

// requireInts compares element sequences, treating nil and empty alike.
func requireInts(t require.TestingT, want, got []int, msgAndArgs ...any) {
	require.Equal(t, append([]int{}, want...), append([]int{}, got...), msgAndArgs...)
}

func TestPropertyFromSliceRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		d := dynarray.New[int]().FromSlice(a)
		requireInts(t, a, d.ToSlice())
		require.Equal(t, len(a), d.Size())
	})
}

func TestPropertyConcatIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		requireInts(t, a, dynarray.From(a).Concat(dynarray.New[int]()).ToSlice(), "a + empty")
		requireInts(t, a, dynarray.New[int]().Concat(dynarray.From(a)).ToSlice(), "empty + a")
	})
}

func TestPropertyConcatAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b, c := drawInts(t, "a"), drawInts(t, "b"), drawInts(t, "c")
		left := dynarray.From(a).Concat(dynarray.From(b)).Concat(dynarray.From(c))
		right := dynarray.From(a).Concat(dynarray.From(b).Concat(dynarray.From(c)))
		requireInts(t, left.ToSlice(), right.ToSlice())
	})
}

func TestPropertyAddThenRemoveLast(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		x := rapid.Int().Draw(t, "x")
		d := dynarray.From(a)
		d.Add(x)
		require.NoError(t, d.RemoveByIndex(d.Len()-1))
		requireInts(t, a, d.ToSlice())
	})
}

func TestPropertyReverseTwice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		requireInts(t, a, dynarray.From(a).Reverse().Reverse().ToSlice())

		want := slices.Clone(a)
		slices.Reverse(want)
		requireInts(t, want, dynarray.From(a).Reverse().ToSlice())
	})
}

func TestPropertyIdentityTransforms(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		requireInts(t, a, dynarray.From(a).Map(func(x int) int { return x }).ToSlice(), "Map(identity)")
		requireInts(t, a, dynarray.From(a).Filter(func(int) bool { return true }).ToSlice(), "Filter(true)")
		require.True(t, dynarray.From(a).Filter(func(int) bool { return false }).IsEmpty(), "Filter(false)")
	})
}

func TestPropertyFilterMatchesSlices(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		m := rapid.IntRange(1, 5).Draw(t, "m")
		keep := func(x int) bool { return x%m == 0 }
		want := slices.DeleteFunc(slices.Clone(a), func(x int) bool { return !keep(x) })
		requireInts(t, want, dynarray.From(a).Filter(keep).ToSlice())
	})
}

func TestPropertyCapacityIsPowerOfTwo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 2000).Draw(t, "n")
		d := dynarray.New[int]()
		for i := 0; i < n; i++ {
			d.Add(i)
		}
		want := 1
		for want < n {
			want <<= 1
		}
		require.Equal(t, want, d.Capacity(), "capacity after %d adds", n)
		require.Equal(t, n, d.Len())
	})
}

func TestPropertyInsertMatchesSlices(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a")
		k := rapid.IntRange(0, len(a)).Draw(t, "k")
		x := rapid.Int().Draw(t, "x")
		d := dynarray.From(a)
		require.NoError(t, d.Insert(k, x))
		requireInts(t, slices.Insert(slices.Clone(a), k, x), d.ToSlice())
	})
}

func TestPropertyGrowNeverOverflows(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := dynarray.From(rapid.SliceOfN(rapid.Int(), 1, 64).Draw(t, "a"))
		n := rapid.IntRange(math.MaxInt-d.Len()+1, math.MaxInt).Draw(t, "n")
		require.ErrorIs(t, d.Grow(n), dynarray.ErrInvalidCapacity)
	})
}

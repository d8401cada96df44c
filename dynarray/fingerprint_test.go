package dynarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-dynarray/dynarray"
)

func raw(s string) []byte { return []byte(s) }

func TestFingerprintEqualContents(t *testing.T) {
	a := dynarray.From([]int{1, 2, 3})
	b := dynarray.New[int]()
	b.Add(1)
	b.Add(2)
	b.Add(3) // capacity 4, a has 3
	assert.Equal(t, a.Fingerprint(nil), b.Fingerprint(nil))
}

func TestFingerprintOrderMatters(t *testing.T) {
	a := dynarray.From([]int{1, 2, 3})
	b := dynarray.From([]int{3, 2, 1})
	assert.NotEqual(t, a.Fingerprint(nil), b.Fingerprint(nil))
	assert.Equal(t, a.Fingerprint(nil), b.Reverse().Fingerprint(nil))
}

func TestFingerprintElementBoundaries(t *testing.T) {
	a := dynarray.From([]string{"ab", "c"})
	b := dynarray.From([]string{"a", "bc"})
	assert.NotEqual(t, a.Fingerprint(raw), b.Fingerprint(raw))
}

func TestFingerprintIgnoresStaleSlots(t *testing.T) {
	a := dynarray.From([]int{1, 2, 3}).Empty()
	a.Add(1)
	assert.Equal(t, dynarray.From([]int{1}).Fingerprint(nil), a.Fingerprint(nil))
}

func TestFingerprintEmpty(t *testing.T) {
	var zero dynarray.DynamicArray[string]
	assert.Equal(t, dynarray.New[string]().Fingerprint(raw), zero.Fingerprint(raw))
	assert.NotEqual(t, dynarray.From([]string{""}).Fingerprint(raw), zero.Fingerprint(raw))
}

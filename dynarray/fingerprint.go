package dynarray

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of the live elements in order.
//
// Each element is serialised with encode and written behind its uvarint
// length, so [ab, c] and [a, bc] hash differently. Capacity and stale
// slots beyond Len() never contribute. A nil encode formats elements with
// %v, which is only stable for types whose %v output is.
//
//	before := a.Fingerprint(nil)
//	a.Reverse().Reverse()
//	before == a.Fingerprint(nil) // true
func (a *DynamicArray[T]) Fingerprint(encode func(T) []byte) [blake2b.Size256]byte {
	if encode == nil {
		encode = func(v T) []byte { return fmt.Appendf(nil, "%v", v) }
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with an oversized key; nil is always valid.
		panic(err)
	}
	var prefix []byte
	for i := 0; i < a.n; i++ {
		b := encode(a.buf[i])
		prefix = binary.AppendUvarint(prefix[:0], uint64(len(b)))
		h.Write(prefix)
		h.Write(b)
	}
	var sum [blake2b.Size256]byte
	h.Sum(sum[:0])
	return sum
}

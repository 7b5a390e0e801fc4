// Package utils collects small generic helpers shared by the ring and bfv
// packages. It mirrors the flavour (not the scope) of the teacher's
// utils/utils.go: a handful of tiny, allocation-free functions rather than
// a general utility grab-bag.
package utils

import "math/bits"

// BitReverse64 returns the bit-reversal of index within a context of
// 2^bitLen values. Grounded on tuneinsight-lattigo/utils/utils.go's
// function of the same name and signature.
func BitReverse64(index uint64, bitLen int) uint64 {
	return bits.Reverse64(index) >> (64 - bitLen)
}

// EqualSlice reports whether a and b have the same length and elements.
// Grounded on tuneinsight-lattigo/utils/utils.go's EqualSliceUint64.
func EqualSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsPowerOfTwo reports whether n is a strictly positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for a strictly positive n.
func Log2(n int) int {
	return bits.Len(uint(n)) - 1
}

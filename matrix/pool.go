// SPDX-License-Identifier: MIT

// Package matrix - backing-buffer recycling.
//
// Purpose:
//   - Give Destroy a real effect: the released buffer returns to a pool and
//     becomes the storage of a later NewRaw/NewDense of a similar size.
//   - Make NewRaw genuinely "uninitialized": a recycled buffer keeps whatever
//     its previous owner wrote, so callers must write before they read.
//
// Determinism:
//   - Pool hits never change numeric results; NewDense clears recycled buffers.
//
// Complexity quicksheet:
//   - getBuffer/putBuffer: O(1) amortized; NewDense adds an O(n) clear.

package matrix

import (
	"math/bits"
	"sync"
)

// maxPooledClass bounds recycling to buffers of at most 1<<maxPooledClass
// elements (8 MiB); larger buffers are left to the garbage collector.
const maxPooledClass = 20

// bufferPools holds one pool per power-of-two capacity class.
// Entries are *[]float64 so Put does not allocate a slice header.
var bufferPools [maxPooledClass + 1]sync.Pool

// sizeClass returns the smallest k with 1<<k >= n (n ≥ 1).
func sizeClass(n int) int { return bits.Len(uint(n - 1)) }

// getBuffer returns a slice of length n whose contents are unspecified.
// Implementation:
//   - Stage 1: map n to its capacity class.
//   - Stage 2: reuse a pooled buffer of that class, or allocate cap 1<<class.
//
// Notes:
//   - Oversized requests bypass the pool and allocate exactly n.
func getBuffer(n int) []float64 {
	class := sizeClass(n)
	if class > maxPooledClass {
		return make([]float64, n)
	}
	if v := bufferPools[class].Get(); v != nil {
		buf := *(v.(*[]float64))

		return buf[:n]
	}

	return make([]float64, n, 1<<class)
}

// putBuffer returns buf to its capacity class. Buffers whose capacity is not
// an exact pooled class (oversized or foreign slices) are dropped.
func putBuffer(buf []float64) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return // not produced by getBuffer
	}
	class := bits.TrailingZeros(uint(c))
	if class > maxPooledClass {
		return
	}
	buf = buf[:c]
	bufferPools[class].Put(&buf)
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & direct accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Offer direct-value (At/Set) and by-reference (Ref) element access for hot loops.
//   - Make ownership explicit: a Dense lives until Destroy returns its buffer to the pool.
//
// Bounds policy:
//   - Indices are a caller invariant. Production builds do not check them;
//     `-tags matrixdebug` turns every access into an asserted one.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewRaw: O(1) on a pool hit; At/Set/Ref: O(1);
//     Clone: O(r*c); Destroy: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in debug assertions
	ctxSet      = "Set"      // method tag used in debug assertions
	ctxRef      = "Ref"      // method tag used in debug assertions
	ctxNewRaw   = "NewRaw"   // ctor tag
	ctxNewDense = "NewDense" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Preserves the sentinel via %w so errors.Is keeps working.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - A released Dense has data == nil and r == c == 0.
type Dense struct {
	r, c int       // row and column counts (> 0 while live)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// checkAlloc validates a requested shape against the allocation ceiling.
// Implementation:
//   - Stage 1: reject non-positive dimensions (ErrInvalidDimensions).
//   - Stage 2: reject rows*cols above MaxDenseElements without overflowing.
//
// Returns:
//   - (rows*cols, nil) or a plain sentinel.
func checkAlloc(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrInvalidDimensions
	}
	if rows > MaxDenseElements/cols {
		return 0, ErrAllocation
	}

	return rows * cols, nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - allocate_zeroed: every cell reads 0.0 after construction.
//
// Implementation:
//   - Stage 1: validate shape and the allocation ceiling.
//   - Stage 2: take a (possibly recycled) buffer and clear it.
//
// Errors:
//   - ErrInvalidDimensions (rows ≤ 0 or cols ≤ 0).
//   - ErrAllocation (rows*cols above MaxDenseElements).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	n, err := checkAlloc(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, err)
	}
	buf := getBuffer(n)
	clear(buf) // recycled buffers carry stale values

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewRaw creates an r×c matrix whose contents are unspecified.
// MAIN DESCRIPTION:
//   - allocate_raw: cheaper than NewDense when every cell is about to be written.
//
// Implementation:
//   - Stage 1: validate shape and the allocation ceiling.
//   - Stage 2: take a (possibly recycled) buffer without clearing it.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation (see NewDense).
//
// Complexity:
//   - Time O(1) on a pool hit, Space O(r*c).
//
// Notes:
//   - Reading a cell before writing it yields whatever a previous owner left there.
func NewRaw(rows, cols int) (*Dense, error) {
	n, err := checkAlloc(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewRaw, rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: getBuffer(n)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// Errors: ErrInvalidDimensions, ErrAllocation, ErrDimensionMismatch (len(data) != r*c).
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewRaw(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		m.Destroy()

		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len %d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// assertIndex panics on an out-of-range (row, col). Only reachable when
// debugChecks is true.
func (m *Dense) assertIndex(method string, row, col int) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(denseErrorf(method, row, col, ErrOutOfRange))
	}
}

// At returns the value at (row, col).
// Bounds are a caller invariant (asserted only under -tags matrixdebug).
// Complexity: O(1).
func (m *Dense) At(row, col int) float64 {
	if debugChecks {
		m.assertIndex(ctxAt, row, col)
	}

	return m.data[row*m.c+col]
}

// Set stores v at (row, col).
// Bounds are a caller invariant (asserted only under -tags matrixdebug).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) {
	if debugChecks {
		m.assertIndex(ctxSet, row, col)
	}
	m.data[row*m.c+col] = v
}

// Ref returns a pointer to the cell at (row, col) for in-place updates
// such as `*m.Ref(i, j) -= v`. The pointer is valid until Destroy.
// Complexity: O(1).
func (m *Dense) Ref(row, col int) *float64 {
	if debugChecks {
		m.assertIndex(ctxRef, row, col)
	}

	return &m.data[row*m.c+col]
}

// Clone returns a deep copy backed by its own buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := getBuffer(len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Destroy releases the storage of m and returns its buffer to the pool.
// MAIN DESCRIPTION:
//   - Explicit end of life; the matrix must not be used afterwards.
//
// Behavior highlights:
//   - Idempotent; safe on a nil receiver.
//   - A released matrix reports Released() == true and is rejected by kernels
//     with ErrReleased.
//
// Complexity: O(1).
func (m *Dense) Destroy() {
	if m == nil || m.data == nil {
		return
	}
	putBuffer(m.data)
	m.data = nil
	m.r, m.c = 0, 0
}

// Released reports whether Destroy has been called on m.
func (m *Dense) Released() bool { return m.data == nil }

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write %g-formatted values into a strings.Builder.
//
// Returns:
//   - string: one "[a, b, ...]" line per row; "" for a released matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	var num []byte
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			num = strconv.AppendFloat(num[:0], m.data[base+j], 'g', -1, 64)
			b.Write(num)
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

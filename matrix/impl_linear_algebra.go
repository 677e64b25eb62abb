// SPDX-License-Identifier: MIT
// Package matrix provides the two products the least-squares pipeline needs:
// transpose and the standard matrix product. Both accept any Matrix, never
// mutate their inputs, and return a freshly allocated *Dense.
//
// Purpose:
//   - Keep kernels (transposeInto / mulInto) separate from allocation so the
//     package-level functions and Scope methods share one loop implementation.
//   - Perform strict fail-fast validation and return wrapped sentinels.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// transposeInto writes mᵀ into dst (dst is m.Cols×m.Rows; every cell is written).
// Implementation:
//   - Stage 1: If m is *Dense, map data[i*cols+j] → dst.data[j*rows+i] on flat slices.
//   - Stage 2: Otherwise use the generic At path with a fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func transposeInto(dst *Dense, m Matrix) {
	rows, cols := m.Rows(), m.Cols()
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				dst.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			dst.data[j*rows+i] = m.At(i, j)
		}
	}
}

// mulInto accumulates a×b into dst, which must be zero-filled and a.Rows×b.Cols.
// Implementation:
//   - Fast path (*Dense × *Dense): i→j→k over flat row-major offsets.
//   - Fallback: the same i→j→k order through At.
//
// Behavior highlights:
//   - Each cell is one float64 running sum in increasing k; no zero-skipping,
//     so NaN/Inf propagate exactly as IEEE 754 dictates.
//
// Complexity:
//   - Time O(r*n*c), Space O(1).
func mulInto(dst *Dense, a, b Matrix) {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k int
		sum     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for j = 0; j < bCols; j++ {
					sum = dst.data[rowR+j]
					for k = 0; k < aCols; k++ {
						sum += da.data[rowA+k] * db.data[k*bCols+j]
					}
					dst.data[rowR+j] = sum
				}
			}

			return
		}
	}
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = dst.data[i*bCols+j]
			for k = 0; k < aCols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			dst.data[i*bCols+j] = sum
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil and live; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate NewRaw(cols, rows).
//   - Stage 2: transposeInto writes every cell.
//
// Errors:
//   - ErrNilMatrix, ErrReleased (validation); ErrAllocation (constructor).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - The caller owns the result; Destroy it (or allocate through a Scope).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewRaw(m.Cols(), m.Rows()) // dims flipped; every cell is written
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	transposeInto(res, m)

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (non-nil, live) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate a zeroed A.Rows×B.Cols result, then accumulate.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (validation).
//   - ErrAllocation (constructor).
//
// Determinism:
//   - Fixed i→j→k loop order on both paths; the fast path and fallback are bitwise equal.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulInto(res, a, b)

	return res, nil
}

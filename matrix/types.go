// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix abstraction consumed by kernels.
package matrix

// Matrix is a two-dimensional read-only view of float64 values.
// Kernels (Transpose, Mul) accept any Matrix and take a flat-slice
// fast path when the operand is a *Dense.
//
// Contract:
//   - Rows() and Cols() are O(1) and stable for the lifetime of the value.
//   - At(i, j) is called only with 0 ≤ i < Rows() and 0 ≤ j < Cols();
//     implementations are not required to bounds-check.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At returns the element at position (i, j).
	At(i, j int) float64
}

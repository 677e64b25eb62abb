// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. Panics are reserved for programmer
// errors: invalid option values and debug-build bounds assertions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf /
// validatorErrorf; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrAllocation indicates that a matrix could not be allocated: rows*cols
	// overflows, exceeds MaxDenseElements, or exceeds the owning Scope budget.
	ErrAllocation = errors.New("matrix: allocation failure")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates that a Dense was used after Destroy.
	ErrReleased = errors.New("matrix: use of released matrix")

	// ErrNaNInf indicates a NaN or ±Inf where a finite value is required,
	// e.g. an AllClose tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Only raised by the matrixdebug build; production accessors do not check.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

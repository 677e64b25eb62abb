// SPDX-License-Identifier: MIT

// Package matrix - scoped ownership.
//
// Purpose:
//   - Own every intermediate matrix of one computation and release them all
//     in strict LIFO order with a single deferred call.
//   - Enforce an optional element budget (WithMaxElements) so allocation
//     failure is a reachable, testable outcome.
//
// Usage:
//
//	s := matrix.NewScope()
//	defer s.Release()
//	a, err := s.Raw(n, k)
//	if err != nil {
//		return err // everything allocated so far is released by the defer
//	}
//
// Concurrency:
//   - A Scope is owned by one goroutine; it has no internal locking.

package matrix

import "fmt"

// Operation tags for Scope error wrapping.
const (
	opScopeRaw   = "Scope.Raw"
	opScopeZeros = "Scope.Zeros"
)

// Scope owns matrices allocated through it until Release.
type Scope struct {
	opts  Options
	owned []*Dense // allocation order; released back-to-front
	elems int      // live float64 cells owned by the scope
}

// NewScope returns an empty Scope configured by opts.
// Complexity: O(1).
func NewScope(opts ...Option) *Scope {
	return &Scope{opts: gatherOptions(opts...)}
}

// reserve checks the element budget for an additional rows×cols matrix.
// Implementation:
//   - Stage 1: shape and per-matrix ceiling via checkAlloc.
//   - Stage 2: compare against the remaining Scope budget (if any).
func (s *Scope) reserve(rows, cols int) error {
	n, err := checkAlloc(rows, cols)
	if err != nil {
		return err
	}
	if limit := s.opts.maxElements; limit > 0 && n > limit-s.elems {
		return fmt.Errorf("budget %d, live %d, requested %d: %w", limit, s.elems, n, ErrAllocation)
	}

	return nil
}

// adopt records m as owned by s.
func (s *Scope) adopt(m *Dense) *Dense {
	s.owned = append(s.owned, m)
	s.elems += len(m.data)

	return m
}

// Raw allocates an owned rows×cols matrix with unspecified contents.
// Errors: ErrInvalidDimensions, ErrAllocation (ceiling or budget).
func (s *Scope) Raw(rows, cols int) (*Dense, error) {
	if err := s.reserve(rows, cols); err != nil {
		return nil, matrixErrorf(opScopeRaw, err)
	}
	m, err := NewRaw(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScopeRaw, err)
	}

	return s.adopt(m), nil
}

// Zeros allocates an owned rows×cols matrix filled with 0.0.
// Errors: ErrInvalidDimensions, ErrAllocation (ceiling or budget).
func (s *Scope) Zeros(rows, cols int) (*Dense, error) {
	if err := s.reserve(rows, cols); err != nil {
		return nil, matrixErrorf(opScopeZeros, err)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScopeZeros, err)
	}

	return s.adopt(m), nil
}

// Transpose is the owned counterpart of the package-level Transpose.
// Errors: ErrNilMatrix, ErrReleased, ErrAllocation.
func (s *Scope) Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := s.Raw(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	transposeInto(res, m)

	return res, nil
}

// Mul is the owned counterpart of the package-level Mul.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAllocation.
func (s *Scope) Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := s.Zeros(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulInto(res, a, b)

	return res, nil
}

// Live returns the number of matrices currently owned by s.
func (s *Scope) Live() int { return len(s.owned) }

// Elements returns the number of float64 cells currently owned by s.
func (s *Scope) Elements() int { return s.elems }

// Release destroys every owned matrix, most recent first, and resets s.
// The Scope may be reused afterwards. Idempotent.
// Complexity: O(Live()).
func (s *Scope) Release() {
	for i := len(s.owned) - 1; i >= 0; i-- {
		s.owned[i].Destroy()
		s.owned[i] = nil
	}
	s.owned = s.owned[:0]
	s.elems = 0
}

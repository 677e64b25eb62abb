// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/polyfit/matrix"
	"github.com/katalvlaran/polyfit/poly"
)

// Operation tags for error wrapping.
const (
	opFit       = "Fit"
	opFitInto   = "FitInto"
	opFitArrays = "FitArrays"
	opFitOrders = "FitOrders"
	opResiduals = "Residuals"
)

// newScope creates the per-fit matrix owner. Tests replace it to observe
// scope creation and release.
var newScope = matrix.NewScope

// lsqErrorf wraps err with an operation tag, preserving it via %w.
func lsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkParams validates fit arguments without allocating anything.
// checkBuf enables the coefficient-buffer checks.
func checkParams(points Points, order int, coefficients []float64, checkBuf bool) error {
	switch {
	case points == nil:
		return fmt.Errorf("nil points: %w", ErrParam)
	case checkBuf && coefficients == nil:
		return fmt.Errorf("nil coefficient buffer: %w", ErrParam)
	case order < 1:
		return fmt.Errorf("order %d < 1: %w", order, ErrParam)
	case checkBuf && len(coefficients) < order:
		return fmt.Errorf("coefficient buffer %d < order %d: %w", len(coefficients), order, ErrParam)
	}
	if n := points.Len(); n < order {
		return fmt.Errorf("%d points < order %d: %w", n, order, ErrParam)
	}

	return nil
}

// FitInto computes the least-squares polynomial of the given order
// (number of coefficients, degree order-1) and writes it, highest degree
// first, into coefficients[:order]. Elements past order are untouched.
//
// Implementation:
//   - Stage 1: validate arguments (no allocation on failure).
//   - Stage 2: build A (n×order, A[r][k] = x_r^(order-1-k)) and b (n×1).
//   - Stage 3: form AᵗA and Aᵗb, solve by Gauss–Jordan without pivot search.
//
// Errors:
//   - ErrParam, ErrAlloc (wrapping matrix.ErrAllocation), ErrSolve.
//
// On error coefficients is left unmodified.
//
// Complexity:
//   - Time O(n·order²), Space O(n·order) held for the duration of the call.
func FitInto(points Points, order int, coefficients []float64, opts ...Option) error {
	if err := checkParams(points, order, coefficients, true); err != nil {
		return lsqErrorf(opFitInto, err)
	}
	o := gatherOptions(opts...)

	s := newScope(matrix.WithMaxElements(o.maxElements))
	defer s.Release()

	if err := solve(s, points, order, coefficients[:order], o); err != nil {
		return lsqErrorf(opFitInto, err)
	}

	return nil
}

// Fit is FitInto with a freshly allocated coefficient buffer.
//
//	c, err := lsq.Fit(lsq.ArrayPoints{Xs: xs, Ys: ys}, 3)
//	if err != nil { ... }
//	y := c.Eval(4)
func Fit(points Points, order int, opts ...Option) (poly.Polynomial, error) {
	if err := checkParams(points, order, nil, false); err != nil {
		return nil, lsqErrorf(opFit, err)
	}
	c := make(poly.Polynomial, order)
	if err := FitInto(points, order, c, opts...); err != nil {
		return nil, lsqErrorf(opFit, err)
	}

	return c, nil
}

// FitArrays fits parallel x/y slices. Slices of different lengths are
// rejected with ErrParam.
func FitArrays(xs, ys []float64, order int, opts ...Option) (poly.Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, lsqErrorf(opFitArrays, fmt.Errorf("len(xs)=%d != len(ys)=%d: %w", len(xs), len(ys), ErrParam))
	}

	return Fit(ArrayPoints{Xs: xs, Ys: ys}, order, opts...)
}

// SPDX-License-Identifier: MIT

// Package polyfit fits polynomials to sample points by least squares,
// evaluates them and renders them as text.
//
// What is polyfit?
//
//	A small, allocation-aware numeric toolkit made of three packages:
//		• matrix: row-major Dense matrices, transpose, product, scoped ownership
//		• lsq   : normal-equation least-squares fitting, status codes, order sweeps
//		• poly  : evaluation, formatting (two-phase Sprint) and parsing
//
// Why these pieces?
//
//   - Explicit lifetimes: every intermediate matrix belongs to a Scope and is
//     released on all exit paths.
//   - Testable failure: allocation budgets turn "out of memory" into an
//     ordinary ErrAlloc.
//   - Plain data: a polynomial is a []float64, highest degree first.
//
// Layout:
//
//	matrix/      : Dense, NewRaw/NewDense, Transpose, Mul, Scope, validators
//	lsq/         : Fit, FitInto, FitArrays, FitOrders, Residuals, Status
//	poly/        : Eval, Format, Sprint, Parse, Polynomial
//	cmd/polyfit/ : demonstration driver (cos(4x/π), orders 1..N)
//
// Quick example:
//
//	c, err := lsq.FitArrays([]float64{0, 1, 2, 3}, []float64{1, 2, 5, 10}, 3)
//	if err != nil {
//		log.Fatal(lsq.StatusOf(err))
//	}
//	fmt.Println(c)         // 1.000000x^2 + 0.000000x + 1.000000 (up to rounding)
//	fmt.Println(c.Eval(4)) // ≈ 17
//
//	go get github.com/katalvlaran/polyfit
package polyfit

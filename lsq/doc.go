// SPDX-License-Identifier: MIT

// Package lsq fits polynomials to sample points by linear least squares.
//
// What:
//   - Fit / FitInto / FitArrays solve the normal equations AᵗA·c = Aᵗb,
//     where A[r][k] = x_r^(order-1-k), and return coefficients highest
//     degree first (the layout package poly evaluates and renders).
//   - FitOrders sweeps orders 1..N concurrently.
//   - Residuals / AbsError measure how well a fit reproduces the samples.
//
// How:
//   - Every intermediate matrix is owned by a per-call matrix.Scope and
//     released on every exit path.
//   - The system is solved by Gauss–Jordan elimination with the diagonal
//     as pivot (no pivot search). A pivot failing the singularity test
//     ends the fit with ErrSolve.
//
// Errors:
//   - ErrParam  bad arguments, detected before any allocation.
//   - ErrAlloc  a matrix could not be allocated (wraps the matrix cause).
//   - ErrSolve  the normal equations are singular for the chosen test.
//
// StatusOf / Status.Err / Message translate between errors and the compact
// Status codes used by log lines and the command-line driver.
//
// Concurrency:
//   - Fit is synchronous and keeps no shared state; independent calls may
//     run in parallel. Points implementations must tolerate concurrent reads
//     when used with FitOrders.
package lsq

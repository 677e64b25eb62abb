// SPDX-License-Identifier: MIT

// Package lsq: functional configuration for fits.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).
package lsq

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/polyfit/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultPivotTolerance selects the exact singularity test (pivot == 0).
	DefaultPivotTolerance = 0.0

	// DefaultMaxElements leaves the per-fit element budget unbounded.
	DefaultMaxElements = matrix.DefaultMaxElements

	// DefaultConcurrency means "use runtime.GOMAXPROCS(0)" for FitOrders.
	DefaultConcurrency = 0
)

// ---------- Panic messages ----------

const (
	panicPivotToleranceInvalid = "lsq: WithPivotTolerance: tol must be finite and >= 0"
	panicMaxElementsInvalid    = "lsq: WithMaxElements: n must be >= 0"
	panicConcurrencyInvalid    = "lsq: WithConcurrency: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol    float64
	maxElements int
	concurrency int
	logger      *zap.Logger
}

// WithPivotTolerance switches the singularity test from the exact
// pivot == 0 check to a relative one: a pivot fails when
// |pivot| <= tol * max|diag(AᵗA)|, the diagonal taken before elimination.
// tol == 0 restores the exact test.
//
// Errors:
//   - Panics when tol is negative, NaN or infinite.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithMaxElements caps the float64 cells one fit may hold live at once.
// A fit of n points and order k needs n*k (A) + n (b) + k*n (Aᵗ) +
// k*k (AᵗA) + k (Aᵗb) cells. 0 disables the cap.
//
// Errors:
//   - Panics when n is negative.
func WithMaxElements(n int) Option {
	if n < 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// WithLogger routes debug output (intermediate matrices, failing pivots,
// allocation failures) to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithConcurrency bounds the number of orders FitOrders solves at once.
//
// Errors:
//   - Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// gatherOptions applies user options over defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:    DefaultPivotTolerance,
		maxElements: DefaultMaxElements,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.concurrency == DefaultConcurrency {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}

// RequiredElements returns the number of float64 cells a fit of n points
// at the given order allocates, i.e. the smallest WithMaxElements budget
// that lets it succeed.
func RequiredElements(n, order int) int {
	return n*order + n + order*n + order*order + order
}

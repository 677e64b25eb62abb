// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for allocation scopes.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global configuration, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxElements is the Scope element budget; 0 means "no budget"
	// (only the per-matrix MaxDenseElements ceiling applies).
	DefaultMaxElements = 0

	// MaxDenseElements is the hard ceiling on rows*cols for a single Dense.
	// Requests above it fail with ErrAllocation instead of exhausting memory.
	// It fits in int on 32-bit targets.
	MaxDenseElements = math.MaxInt32
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxElementsInvalid = "matrix: WithMaxElements: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxElements int // >= 0; DefaultMaxElements
}

// MaxElements reports the configured Scope element budget (0 = unbounded).
func (o Options) MaxElements() int { return o.maxElements }

// WithMaxElements caps the total number of float64 cells a Scope may hold
// live at once. Allocations that would exceed the cap fail with ErrAllocation.
// Implementation:
//   - Stage 1: validate n ≥ 0 (0 disables the budget).
//   - Stage 2: return a setter that writes maxElements.
//
// Errors:
//   - Panics with a stable message when n is negative.
//
// AI-Hints:
//   - Tests use small budgets to force allocation failure at a chosen stage.
func WithMaxElements(n int) Option {
	if n < 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// gatherOptions applies user options over defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxElements: DefaultMaxElements,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}

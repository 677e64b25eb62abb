// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/polyfit/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c zeroed *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom builds an r×c *Dense from row-major values or fails the test.
func MustFrom(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomFill fills m with deterministic pseudo-random values in [-1, 1).
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			m.Set(i, j, 2*rng.Float64()-1)
		}
	}
}

// CompareExact fails the test unless got matches want cell by cell.
func CompareExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), got.Rows())
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		if got.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), got.Cols())
		}
		for j = 0; j < len(want[i]); j++ {
			if got.At(i, j) != want[i][j] {
				t.Fatalf("at [%d,%d]: want %g, got %g", i, j, want[i][j], got.At(i, j))
			}
		}
	}
}

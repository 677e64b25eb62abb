// SPDX-License-Identifier: MIT
// Package lsq_test contains shared fixtures.

package lsq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyfit/lsq"
	"github.com/katalvlaran/polyfit/matrix"
)

// cosineSamples returns n samples of cos(4x/π) at x = 0..n-1.
func cosineSamples(n int) lsq.ArrayPoints {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = math.Cos(4 / math.Pi * xs[i])
	}

	return lsq.ArrayPoints{Xs: xs, Ys: ys}
}

// trackScopes installs the scope recorder for the duration of t.
func trackScopes(t *testing.T) func() []*matrix.Scope {
	t.Helper()
	scopes, restore := lsq.TrackScopes_TestOnly()
	t.Cleanup(restore)

	return scopes
}

// requireReleased asserts that every recorded scope owns nothing.
func requireReleased(t *testing.T, scopes []*matrix.Scope) {
	t.Helper()
	for i, s := range scopes {
		require.Zerof(t, s.Live(), "scope %d still owns matrices", i)
		require.Zerof(t, s.Elements(), "scope %d still owns cells", i)
	}
}

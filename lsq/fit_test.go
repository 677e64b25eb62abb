// SPDX-License-Identifier: MIT

package lsq_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyfit/lsq"
	"github.com/katalvlaran/polyfit/matrix"
	"github.com/katalvlaran/polyfit/poly"
)

// TestFit_ParabolaThroughFourPoints checks the reference scenario
// (0,1),(1,2),(2,5),(3,10) → x² + 1.
func TestFit_ParabolaThroughFourPoints(t *testing.T) {
	scopes := trackScopes(t)

	c, err := lsq.FitArrays([]float64{0, 1, 2, 3}, []float64{1, 2, 5, 10}, 3)
	require.NoError(t, err)
	require.Len(t, c, 3)
	if diff := cmp.Diff(poly.Polynomial{1, 0, 1}, c, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("coefficients (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 17.0, c.Eval(4), 1e-8)

	require.Len(t, scopes(), 1)
	requireReleased(t, scopes())
}

func TestFit_OrderOneIsMean(t *testing.T) {
	xs := []float64{0.5, 1.7, 3, 10, -4}
	ys := []float64{2, 4, 9, -1, 3.5}
	c, err := lsq.FitArrays(xs, ys, 1)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.InDelta(t, 3.5, c[0], 1e-12)
}

func TestFit_InterpolatesWhenOrderEqualsPoints(t *testing.T) {
	pts := lsq.ArrayPoints{
		Xs: []float64{-1, 0.5, 2, 3.5},
		Ys: []float64{3, -1, 2, 0.25},
	}
	c, err := lsq.Fit(pts, pts.Len())
	require.NoError(t, err)

	res, err := lsq.Residuals(pts, c)
	require.NoError(t, err)
	for i, r := range res {
		assert.LessOrEqualf(t, math.Abs(r), 1e-6*math.Max(1, math.Abs(pts.Ys[i])), "point %d", i)
	}
}

func TestFitInto_WritesOnlyOrderCoefficients(t *testing.T) {
	buf := []float64{9, 9, 9, 9, 9}
	err := lsq.FitInto(lsq.ArrayPoints{Xs: []float64{0, 1, 2}, Ys: []float64{1, 3, 5}}, 2, buf)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, buf[0], 1e-12)
	assert.InDelta(t, 1.0, buf[1], 1e-12)
	assert.Equal(t, []float64{9, 9, 9}, buf[2:], "cells past order are untouched")
}

func TestFitInto_BadParameters(t *testing.T) {
	pts := lsq.ArrayPoints{Xs: []float64{0, 1, 2}, Ys: []float64{1, 2, 3}}
	tests := []struct {
		name   string
		points lsq.Points
		order  int
		buf    []float64
	}{
		{"nil points", nil, 2, make([]float64, 2)},
		{"nil coefficients", pts, 2, nil},
		{"order zero", pts, 0, make([]float64, 2)},
		{"negative order", pts, -3, make([]float64, 2)},
		{"short buffer", pts, 3, make([]float64, 2)},
		{"order above point count", pts, 4, make([]float64, 4)},
		{"nil accessor", lsq.PointsFunc{N: 5, XFunc: func(i int) float64 { return 0 }}, 1, make([]float64, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scopes := trackScopes(t)
			err := lsq.FitInto(tc.points, tc.order, tc.buf)
			require.ErrorIs(t, err, lsq.ErrParam)
			assert.Equal(t, lsq.StatusParam, lsq.StatusOf(err))
			assert.Empty(t, scopes(), "parameter errors must not allocate")
		})
	}
}

func TestFit_BadParameters(t *testing.T) {
	scopes := trackScopes(t)

	_, err := lsq.Fit(nil, 1)
	require.ErrorIs(t, err, lsq.ErrParam)
	_, err = lsq.Fit(lsq.ArrayPoints{}, 0)
	require.ErrorIs(t, err, lsq.ErrParam)
	_, err = lsq.FitArrays([]float64{0, 1, 2}, []float64{1, 2}, 1)
	require.ErrorIs(t, err, lsq.ErrParam)
	_, err = lsq.FitArrays([]float64{0, 1}, []float64{1, 2}, 3)
	require.ErrorIs(t, err, lsq.ErrParam)

	assert.Empty(t, scopes())
}

func TestFit_IdenticalXIsSingular(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		order int
	}{
		{"x=0 order 2", 0, 2},
		{"x=1 order 2", 1, 2},
		{"x=2 order 2", 2, 2},
		{"x=2 order 3", 2, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scopes := trackScopes(t)
			pts := lsq.PointsFunc{
				N:     3,
				XFunc: func(int) float64 { return tc.x },
				YFunc: func(i int) float64 { return float64(i) },
			}
			buf := []float64{7, 7, 7}
			err := lsq.FitInto(pts, tc.order, buf)
			require.ErrorIs(t, err, lsq.ErrSolve)
			assert.Equal(t, lsq.StatusSolve, lsq.StatusOf(err))
			assert.Equal(t, []float64{7, 7, 7}, buf, "buffer untouched on failure")
			requireReleased(t, scopes())
		})
	}
}

// TestFit_AllocationFailureAtEachStage walks the budget up through every
// allocation of a 4-point, order-3 fit: A=12, b=4, Aᵗ=12, AᵗA=9, Aᵗb=3.
func TestFit_AllocationFailureAtEachStage(t *testing.T) {
	pts := lsq.ArrayPoints{Xs: []float64{0, 1, 2, 3}, Ys: []float64{1, 2, 5, 10}}
	require.Equal(t, 40, lsq.RequiredElements(4, 3))

	tests := []struct {
		budget int
		stage  string
	}{
		{11, "design matrix A"},
		{15, "target vector b"},
		{27, "transpose Aᵗ"},
		{36, "product AᵗA"},
		{39, "product Aᵗb"},
	}
	for _, tc := range tests {
		t.Run(tc.stage, func(t *testing.T) {
			scopes := trackScopes(t)
			_, err := lsq.Fit(pts, 3, lsq.WithMaxElements(tc.budget))
			require.ErrorIs(t, err, lsq.ErrAlloc)
			require.ErrorIs(t, err, matrix.ErrAllocation, "matrix cause stays reachable")
			assert.Contains(t, err.Error(), tc.stage)
			assert.Equal(t, lsq.StatusAlloc, lsq.StatusOf(err))

			require.Len(t, scopes(), 1)
			requireReleased(t, scopes())
		})
	}

	c, err := lsq.Fit(pts, 3, lsq.WithMaxElements(40))
	require.NoError(t, err)
	assert.InDelta(t, 17.0, c.Eval(4), 1e-8)
}

func TestFit_PivotTolerance(t *testing.T) {
	// Σx² and (Σx)²/n differ by ~3h²/4: nonzero, but negligible next to diag.
	const h = 1e-6
	pts := lsq.ArrayPoints{Xs: []float64{1, 1, 1, 1 + h}, Ys: []float64{0, 1, 2, 3}}

	_, err := lsq.Fit(pts, 2)
	require.NoError(t, err, "exact test accepts any nonzero pivot")

	_, err = lsq.Fit(pts, 2, lsq.WithPivotTolerance(1e-9))
	require.ErrorIs(t, err, lsq.ErrSolve)

	// Well-conditioned data passes a strict relative test.
	_, err = lsq.Fit(cosineSamples(8), 3, lsq.WithPivotTolerance(1e-12))
	require.NoError(t, err)

	// tol = 0 restores the exact test.
	_, err = lsq.Fit(pts, 2, lsq.WithPivotTolerance(1e-9), lsq.WithPivotTolerance(0))
	require.NoError(t, err)
}

// TestFit_AgreesWithQR compares the normal-equation solution with an
// independent Householder QR solve on well-conditioned data.
func TestFit_AgreesWithQR(t *testing.T) {
	const n = 12
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = -1 + 2*float64(i)/(n-1)
		ys[i] = math.Exp(xs[i]) + 0.1*math.Sin(7*xs[i])
	}
	for order := 1; order <= 6; order++ {
		got, err := lsq.FitArrays(xs, ys, order)
		require.NoErrorf(t, err, "order %d", order)

		want := qrFit(t, xs, ys, order)
		if diff := cmp.Diff(want, []float64(got), cmpopts.EquateApprox(1e-7, 1e-9)); diff != "" {
			t.Errorf("order %d (-qr +lsq):\n%s", order, diff)
		}
	}
}

func TestPoints(t *testing.T) {
	a := lsq.ArrayPoints{Xs: []float64{1, 2, 3}, Ys: []float64{4, 5}}
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2.0, a.X(1))
	assert.Equal(t, 5.0, a.Y(1))

	sq := func(i int) float64 { return float64(i * i) }
	id := func(i int) float64 { return float64(i) }
	assert.Equal(t, 4, lsq.PointsFunc{N: 4, XFunc: id, YFunc: sq}.Len())
	assert.Equal(t, 0, lsq.PointsFunc{N: 4, XFunc: id}.Len())
	assert.Equal(t, 0, lsq.PointsFunc{N: 4, YFunc: sq}.Len())
	assert.Equal(t, 0, lsq.PointsFunc{N: -1, XFunc: id, YFunc: sq}.Len())
	assert.Equal(t, 9.0, lsq.PointsFunc{N: 4, XFunc: id, YFunc: sq}.Y(3))
}

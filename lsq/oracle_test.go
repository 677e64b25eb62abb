// SPDX-License-Identifier: MIT

package lsq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// qrFit solves min‖A·c - y‖ with gonum's QR factorisation, A being the
// Vandermonde matrix with columns x^(order-1) … x^0.
func qrFit(t *testing.T, xs, ys []float64, order int) []float64 {
	t.Helper()
	n := len(xs)
	a := mat.NewDense(n, order, nil)
	for r, x := range xs {
		for k := 0; k < order; k++ {
			a.Set(r, k, math.Pow(x, float64(order-1-k)))
		}
	}
	b := mat.NewDense(n, 1, append([]float64(nil), ys...))

	var qr mat.QR
	qr.Factorize(a)
	var c mat.Dense
	require.NoError(t, qr.SolveTo(&c, false, b))

	return mat.Col(nil, 0, &c)
}

// SPDX-License-Identifier: MIT

package lsq

// Points is a read-only sequence of (x, y) samples.
// X and Y are called only with 0 <= i < Len().
type Points interface {
	Len() int
	X(i int) float64
	Y(i int) float64
}

// ArrayPoints serves samples from two parallel slices.
// Len is the shorter of the two lengths.
type ArrayPoints struct {
	Xs, Ys []float64
}

var (
	_ Points = ArrayPoints{}
	_ Points = PointsFunc{}
)

// Len returns min(len(Xs), len(Ys)).
func (p ArrayPoints) Len() int { return min(len(p.Xs), len(p.Ys)) }

// X returns Xs[i].
func (p ArrayPoints) X(i int) float64 { return p.Xs[i] }

// Y returns Ys[i].
func (p ArrayPoints) Y(i int) float64 { return p.Ys[i] }

// PointsFunc serves N samples through a pair of accessor functions,
// e.g. to sample a function without materialising slices.
type PointsFunc struct {
	N     int
	XFunc func(i int) float64
	YFunc func(i int) float64
}

// Len returns N, or 0 when either accessor is nil.
func (p PointsFunc) Len() int {
	if p.XFunc == nil || p.YFunc == nil || p.N < 0 {
		return 0
	}

	return p.N
}

// X returns XFunc(i).
func (p PointsFunc) X(i int) float64 { return p.XFunc(i) }

// Y returns YFunc(i).
func (p PointsFunc) Y(i int) float64 { return p.YFunc(i) }

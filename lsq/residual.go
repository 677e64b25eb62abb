// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polyfit/poly"
)

// Residuals returns y_i - f(x_i) for every point, f given by coefficients
// (highest degree first).
// Errors: ErrParam for nil points or empty coefficients.
func Residuals(points Points, coefficients []float64) ([]float64, error) {
	if points == nil || len(coefficients) == 0 {
		return nil, lsqErrorf(opResiduals, fmt.Errorf("nil points or empty polynomial: %w", ErrParam))
	}
	out := make([]float64, points.Len())
	for i := range out {
		out[i] = points.Y(i) - poly.Eval(coefficients, points.X(i))
	}

	return out, nil
}

// AbsError returns Σ|y_i - f(x_i)|, the total absolute deviation of the
// fit from its samples.
// Errors: see Residuals.
func AbsError(points Points, coefficients []float64) (float64, error) {
	res, err := Residuals(points, coefficients)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, r := range res {
		sum += math.Abs(r)
	}

	return sum, nil
}

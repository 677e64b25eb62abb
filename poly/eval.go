// SPDX-License-Identifier: MIT

package poly

// Eval returns the value of the polynomial at x.
//
// Accumulation starts at the constant term and walks towards the highest
// degree, keeping a running power of x. An empty slice evaluates to 0.
//
// Complexity: O(n) time, O(1) space.
func Eval(coefficients []float64, x float64) float64 {
	n := len(coefficients)
	if n == 0 {
		return 0
	}
	sum := coefficients[n-1]
	pow := 1.0
	for i := n - 2; i >= 0; i-- {
		pow *= x
		sum += pow * coefficients[i]
	}

	return sum
}

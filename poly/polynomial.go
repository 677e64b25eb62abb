// SPDX-License-Identifier: MIT

package poly

// Polynomial is a coefficient slice, highest degree first.
// It is the same representation the package functions take, with methods.
type Polynomial []float64

// Order returns the number of coefficients (degree + 1).
func (p Polynomial) Order() int { return len(p) }

// Degree returns Order()-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval returns p(x). See Eval.
func (p Polynomial) Eval(x float64) float64 { return Eval(p, x) }

// String renders p with DefaultPrecision digits. See Format.
func (p Polynomial) String() string { return Format(p) }

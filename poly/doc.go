// SPDX-License-Identifier: MIT

// Package poly evaluates, renders and parses polynomials stored as
// coefficient slices, highest degree first.
//
// A slice c of length n represents
//
//	c[0]·x^(n-1) + c[1]·x^(n-2) + … + c[n-1]
//
// The empty slice is the zero polynomial of order 0.
//
// ⚙️ Usage:
//
//	p := poly.Polynomial{1, 0, 1}  // x² + 1
//	p.Eval(4)                      // 17
//	p.String()                     // "1.000000x^2 + 0.000000x + 1.000000"
//	q, _ := poly.Parse(p.String()) // back to {1, 0, 1}
package poly

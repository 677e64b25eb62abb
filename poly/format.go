// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of fractional digits Format emits,
// matching C's "%f".
const DefaultPrecision = 6

// ShortestPrecision selects the shortest decimal that round-trips exactly.
const ShortestPrecision = -1

// AppendFormat appends the textual form of the polynomial to dst and
// returns the extended buffer.
//
// Rendering rules:
//   - term k (exponent e) is "<|c|>x^e" for e ≥ 2, "<|c|>x" for e = 1 and
//     "<|c|>" for e = 0;
//   - the first term keeps its own sign; later terms are joined with
//     " + " or " - " chosen by the coefficient's sign bit;
//   - numbers use fixed notation with prec fractional digits, or the
//     shortest exact form when prec is ShortestPrecision.
func AppendFormat(dst []byte, coefficients []float64, prec int) []byte {
	n := len(coefficients)
	for i, c := range coefficients {
		exp := n - 1 - i
		if i != 0 {
			if math.Signbit(c) {
				dst = append(dst, " - "...)
				c = -c
			} else {
				dst = append(dst, " + "...)
			}
		}
		dst = strconv.AppendFloat(dst, c, 'f', prec, 64)
		switch {
		case exp == 1:
			dst = append(dst, 'x')
		case exp > 1:
			dst = append(dst, "x^"...)
			dst = strconv.AppendInt(dst, int64(exp), 10)
		}
	}

	return dst
}

// FormatPrec renders the polynomial with prec fractional digits.
func FormatPrec(coefficients []float64, prec int) string {
	return string(AppendFormat(nil, coefficients, prec))
}

// Format renders the polynomial with DefaultPrecision digits,
// e.g. "1.000000x^2 - 3.500000x + 0.250000".
func Format(coefficients []float64) string {
	return FormatPrec(coefficients, DefaultPrecision)
}

// Sprint renders the polynomial into a caller-owned, NUL-terminated buffer
// using the two-phase size-then-fill convention.
//
// If buf holds the text plus its terminator, Sprint writes both and returns
// the text length (terminator excluded). Otherwise it writes as much of the
// text as fits followed by a terminator (nothing when len(buf) == 0, so a
// nil buffer is legal) and returns the size a buffer must have to succeed,
// terminator included. An empty polynomial returns 0 and writes nothing.
//
//	size := poly.Sprint(nil, c)   // query
//	buf := make([]byte, size)
//	n := poly.Sprint(buf, c)      // n == size-1; buf[n] == 0
func Sprint(buf []byte, coefficients []float64) int {
	if len(coefficients) == 0 {
		return 0
	}
	var scratch [64]byte
	text := AppendFormat(scratch[:0], coefficients, DefaultPrecision)
	if len(text) < len(buf) {
		copy(buf, text)
		buf[len(text)] = 0

		return len(text)
	}
	if len(buf) > 0 {
		copy(buf, text[:len(buf)-1])
		buf[len(buf)-1] = 0
	}

	return len(text) + 1
}

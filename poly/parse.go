// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates that Parse met text that is not a rendered polynomial.
var ErrSyntax = errors.New("poly: invalid polynomial syntax")

// MaxExponent is the largest exponent Parse accepts. It bounds the
// coefficient slice a short text can make Parse allocate.
const MaxExponent = 1 << 16

// term is one parsed "<coef>x^<exp>" element.
type term struct {
	coef float64
	exp  int
}

// Parse reads text produced by Format/FormatPrec back into coefficients,
// highest degree first.
//
// Accepted grammar (whitespace around the whole input is ignored):
//
//	poly  = "" | term { (" + " | " - ") term }
//	term  = number [ "x" [ "^" digits ] ]
//
// Exponents must strictly decrease from left to right; missing powers are
// filled with 0, so "2x^2 - 1" parses as {2, 0, -1}. Exponents above
// MaxExponent are rejected. A bare "x" or "-x" carries an implicit
// coefficient of ±1.
func Parse(s string) (Polynomial, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Polynomial{}, nil
	}

	var terms []term
	sign := 1.0
	for {
		next, op := nextSeparator(s)
		text := s
		if next >= 0 {
			text = s[:next]
		}
		t, err := parseTerm(text)
		if err != nil {
			return nil, err
		}
		t.coef *= sign
		if len(terms) > 0 && t.exp >= terms[len(terms)-1].exp {
			return nil, fmt.Errorf("poly: exponent %d after %d: %w", t.exp, terms[len(terms)-1].exp, ErrSyntax)
		}
		terms = append(terms, t)

		if next < 0 {
			break
		}
		sign = 1
		if op == '-' {
			sign = -1
		}
		s = s[next+3:]
	}

	out := make(Polynomial, terms[0].exp+1)
	for _, t := range terms {
		out[len(out)-1-t.exp] = t.coef
	}

	return out, nil
}

// nextSeparator finds the first " + " or " - " in s and returns its index
// and operator, or -1 when s holds a single term.
func nextSeparator(s string) (int, byte) {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == ' ' && (s[i+1] == '+' || s[i+1] == '-') && s[i+2] == ' ' {
			return i, s[i+1]
		}
	}

	return -1, 0
}

// parseTerm parses a single "<coef>[x[^exp]]" element.
func parseTerm(text string) (term, error) {
	num, exp := text, 0
	if i := strings.IndexByte(text, 'x'); i >= 0 {
		num = text[:i]
		switch tail := text[i+1:]; {
		case tail == "":
			exp = 1
		case tail[0] == '^':
			e, err := strconv.Atoi(tail[1:])
			if err != nil || e < 0 || e > MaxExponent {
				return term{}, fmt.Errorf("poly: term %q: %w", text, ErrSyntax)
			}
			exp = e
		default:
			return term{}, fmt.Errorf("poly: term %q: %w", text, ErrSyntax)
		}
	}

	var coef float64
	switch num {
	case "", "+":
		if exp == 0 {
			return term{}, fmt.Errorf("poly: empty term: %w", ErrSyntax)
		}
		coef = 1
	case "-":
		if exp == 0 {
			return term{}, fmt.Errorf("poly: term %q: %w", text, ErrSyntax)
		}
		coef = -1
	default:
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return term{}, fmt.Errorf("poly: term %q: %w", text, ErrSyntax)
		}
		coef = v
	}

	return term{coef: coef, exp: exp}, nil
}

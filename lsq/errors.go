// SPDX-License-Identifier: MIT

package lsq

import "errors"

// Sentinel errors. Match with errors.Is; returned errors may carry context.
var (
	// ErrAlloc indicates that an intermediate matrix could not be allocated.
	ErrAlloc = errors.New("lsq: allocation failure")

	// ErrParam indicates invalid arguments (nil points or buffer, order < 1,
	// a too-short coefficient buffer, or fewer points than the order).
	ErrParam = errors.New("lsq: bad parameter")

	// ErrSolve indicates a singular system of normal equations.
	ErrSolve = errors.New("lsq: unable to solve")
)

// Status is the compact outcome code of a fit.
type Status uint8

// Status codes. StatusUnknown stands for any error outside the lsq set.
const (
	StatusOK Status = iota
	StatusAlloc
	StatusParam
	StatusSolve

	StatusUnknown Status = 255
)

// Human-readable status messages.
const (
	msgOK      = "OK"
	msgAlloc   = "Allocation failure"
	msgParam   = "Bad parameter"
	msgSolve   = "Unable to solve"
	msgUnknown = "Unknown error"
)

// Message returns the fixed description of code. Unrecognised codes yield
// "Unknown error".
func Message(code Status) string {
	switch code {
	case StatusOK:
		return msgOK
	case StatusAlloc:
		return msgAlloc
	case StatusParam:
		return msgParam
	case StatusSolve:
		return msgSolve
	default:
		return msgUnknown
	}
}

// String implements fmt.Stringer via Message.
func (s Status) String() string { return Message(s) }

// Err returns the sentinel for s: nil for StatusOK, ErrAlloc, ErrParam or
// ErrSolve for their codes, and a generic error otherwise.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusAlloc:
		return ErrAlloc
	case StatusParam:
		return ErrParam
	case StatusSolve:
		return ErrSolve
	default:
		return errUnknown
	}
}

var errUnknown = errors.New("lsq: " + msgUnknown)

// StatusOf maps err to its Status. nil maps to StatusOK; errors that wrap
// none of the lsq sentinels map to StatusUnknown.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrAlloc):
		return StatusAlloc
	case errors.Is(err, ErrParam):
		return StatusParam
	case errors.Is(err, ErrSolve):
		return StatusSolve
	default:
		return StatusUnknown
	}
}

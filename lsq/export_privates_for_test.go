// SPDX-License-Identifier: MIT

package lsq

import "github.com/katalvlaran/polyfit/matrix"

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED hooks and constants to lsq_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid
	PanicMaxElementsInvalid_TestOnly    = panicMaxElementsInvalid
	PanicConcurrencyInvalid_TestOnly    = panicConcurrencyInvalid
)

// TrackScopes_TestOnly replaces the per-fit scope constructor with one that
// records every Scope it creates. The returned func lists them; restore puts
// the original constructor back.
func TrackScopes_TestOnly() (scopes func() []*matrix.Scope, restore func()) {
	prev := newScope
	var created []*matrix.Scope
	newScope = func(opts ...matrix.Option) *matrix.Scope {
		s := prev(opts...)
		created = append(created, s)

		return s
	}

	return func() []*matrix.Scope { return created }, func() { newScope = prev }
}

// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED constants and helpers to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicMaxElementsInvalid_TestOnly = panicMaxElementsInvalid
)

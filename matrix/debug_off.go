// SPDX-License-Identifier: MIT
//go:build !matrixdebug

package matrix

// debugChecks is false in production builds: accessors trust the caller's
// bounds and the checks below compile away.
const debugChecks = false

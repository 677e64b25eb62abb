// SPDX-License-Identifier: MIT
//go:build matrixdebug

package matrix

// debugChecks enables bounds assertions in At/Set/Ref (build with -tags matrixdebug).
const debugChecks = true

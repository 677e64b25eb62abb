// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polyfit/matrix"
)

// Allocation stages, used in ErrAlloc context and log fields.
const (
	stageDesign    = "design matrix A"
	stageTarget    = "target vector b"
	stageTranspose = "transpose Aᵗ"
	stageGram      = "product AᵗA"
	stageMoment    = "product Aᵗb"
)

// allocErrorf maps a matrix allocation failure at stage onto ErrAlloc,
// keeping the matrix cause reachable through errors.Is.
func allocErrorf(log *zap.Logger, stage string, err error) error {
	log.Debug("allocation failed", zap.String("stage", stage), zap.Error(err))

	return fmt.Errorf("%w: %s: %w", ErrAlloc, stage, err)
}

// solve runs the normal-equation pipeline inside s and writes the solution
// into out (len(out) == order). Every matrix belongs to s.
func solve(s *matrix.Scope, points Points, order int, out []float64, o Options) error {
	log := o.logger
	n := points.Len()
	var r, k int // loop iterators

	A, err := s.Raw(n, order)
	if err != nil {
		return allocErrorf(log, stageDesign, err)
	}
	for r = 0; r < n; r++ {
		x := points.X(r)
		for k = 0; k < order; k++ {
			A.Set(r, k, math.Pow(x, float64(order-1-k)))
		}
	}

	B, err := s.Zeros(n, 1)
	if err != nil {
		return allocErrorf(log, stageTarget, err)
	}
	for r = 0; r < n; r++ {
		B.Set(r, 0, points.Y(r))
	}

	At, err := s.Transpose(A)
	if err != nil {
		return allocErrorf(log, stageTranspose, err)
	}
	AtA, err := s.Mul(At, A)
	if err != nil {
		return allocErrorf(log, stageGram, err)
	}
	AtB, err := s.Mul(At, B)
	if err != nil {
		return allocErrorf(log, stageMoment, err)
	}
	log.Debug("normal equations",
		zap.Int("points", n),
		zap.Int("order", order),
		zap.Stringer("A", A),
		zap.Stringer("AtA", AtA),
		zap.Stringer("AtB", AtB),
	)

	if err = gaussJordan(AtA, AtB, o.pivotTol, log); err != nil {
		return err
	}
	for k = range out {
		out[k] = AtB.At(k, 0)
	}

	return nil
}

// gaussJordan solves ata·x = atb in place; on success atb holds x.
//
// Implementation:
//   - Stage 1: derive the singularity threshold (0 for the exact test,
//     tol·max|diag(ata)| otherwise).
//   - Stage 2: for each column c, take ata[c][c] as pivot and eliminate
//     column c from every other row of ata and atb together.
//   - Stage 3: divide each pivot row by its pivot.
//
// Errors:
//   - ErrSolve as soon as a pivot satisfies |pivot| <= threshold.
//
// Complexity:
//   - Time O(k³), Space O(1).
func gaussJordan(ata, atb *matrix.Dense, tol float64, log *zap.Logger) error {
	k := ata.Rows()
	var c, r, j int // loop iterators

	var threshold float64
	if tol > 0 {
		var maxDiag float64
		for c = 0; c < k; c++ {
			maxDiag = math.Max(maxDiag, math.Abs(ata.At(c, c)))
		}
		threshold = tol * maxDiag
	}

	var pivot, factor, rhs float64
	for c = 0; c < k; c++ {
		pivot = ata.At(c, c)
		if math.Abs(pivot) <= threshold {
			log.Debug("singular pivot",
				zap.Int("column", c),
				zap.Float64("pivot", pivot),
				zap.Float64("threshold", threshold),
				zap.Stringer("AtA", ata),
			)

			return fmt.Errorf("pivot %d = %g: %w", c, pivot, ErrSolve)
		}
		rhs = atb.At(c, 0)
		for r = 0; r < k; r++ {
			if r == c {
				continue
			}
			factor = ata.At(r, c) / pivot
			for j = 0; j < k; j++ {
				*ata.Ref(r, j) -= ata.At(c, j) * factor
			}
			*atb.Ref(r, 0) -= rhs * factor
		}
	}

	for c = 0; c < k; c++ {
		pivot = ata.At(c, c)
		for j = 0; j < k; j++ {
			*ata.Ref(c, j) /= pivot
		}
		*atb.Ref(c, 0) /= pivot
	}

	return nil
}

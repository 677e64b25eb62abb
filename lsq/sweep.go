// SPDX-License-Identifier: MIT

package lsq

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polyfit/poly"
)

// OrderFit is the outcome of one order in a FitOrders sweep.
type OrderFit struct {
	Order        int
	Coefficients poly.Polynomial // nil when Err != nil
	Err          error
}

// FitOrders fits every order from 1 to maxOrder against the same points,
// solving up to WithConcurrency orders at once. results[i] holds order i+1.
//
// A failing order is recorded in its OrderFit.Err and does not stop the
// sweep; the returned error is non-nil only for bad arguments (ErrParam)
// or when ctx is done before every order has started.
//
// points is read from several goroutines and must tolerate it.
func FitOrders(ctx context.Context, points Points, maxOrder int, opts ...Option) ([]OrderFit, error) {
	if points == nil {
		return nil, lsqErrorf(opFitOrders, fmt.Errorf("nil points: %w", ErrParam))
	}
	if maxOrder < 1 {
		return nil, lsqErrorf(opFitOrders, fmt.Errorf("max order %d < 1: %w", maxOrder, ErrParam))
	}
	o := gatherOptions(opts...)

	results := make([]OrderFit, maxOrder)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range results {
		i := i // per-iteration copy; go directive is below 1.22
		order := i + 1
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := Fit(points, order, opts...)
			results[i] = OrderFit{Order: order, Coefficients: c, Err: err}
			o.logger.Debug("order fitted",
				zap.Int("order", order),
				zap.Stringer("status", StatusOf(err)),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lsqErrorf(opFitOrders, err)
	}

	return results, nil
}

// SPDX-License-Identifier: MIT

// Command polyfit fits polynomials of increasing order to a set of samples
// and prints each fit with its total absolute error.
//
// By default it samples cos(4x/π) at x = 0..7 and fits orders 1..8:
//
//	- Order: 1
//	  f(x) = 0.049443
//	  error = 5.253759
//
// Usage:
//
//	polyfit [-points N] [-max-order K] [-input samples.csv]
//	        [-pivot-tol T] [-max-elements E] [-log-level debug]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/polyfit/lsq"
	"github.com/katalvlaran/polyfit/poly"
)

const defaultPoints = 8

var errConfig = errors.New("invalid configuration")

type config struct {
	points      int     // synthetic sample count
	maxOrder    int     // 0 = number of points
	input       string  // CSV of x,y rows; overrides the synthetic samples
	pivotTol    float64 // lsq.WithPivotTolerance
	maxElements int     // lsq.WithMaxElements
}

func main() {
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	var cfg config
	flag.IntVar(&cfg.points, "points", defaultPoints, "number of cos(4x/π) samples, taken at x = 0..points-1")
	flag.IntVar(&cfg.maxOrder, "max-order", 0, "highest order to fit (0 = number of points)")
	flag.StringVar(&cfg.input, "input", "", "CSV file of x,y rows to fit instead of the synthetic samples")
	flag.Float64Var(&cfg.pivotTol, "pivot-tol", lsq.DefaultPivotTolerance, "relative pivot tolerance (0 = exact zero test)")
	flag.IntVar(&cfg.maxElements, "max-elements", lsq.DefaultMaxElements, "matrix element budget per fit (0 = unbounded)")
	flag.Parse()
	dev, err := newLogger(*level)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)

	os.Exit(runMain(dev, os.Stdout, cfg))
}

// newLogger builds the development logger at the given level.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// runMain runs the report and returns the process exit code. log is
// flushed before runMain returns.
func runMain(log *zap.Logger, w io.Writer, cfg config) int {
	defer func() { _ = log.Sync() }()

	if err := run(context.Background(), w, cfg); err != nil {
		log.Sugar().Errorf("polyfit: %s", err)

		return 1
	}

	return 0
}

// run fits orders 1..maxOrder and writes one report block per order.
// It stops at the first order that fails, after printing its header.
func run(ctx context.Context, w io.Writer, cfg config) error {
	if cfg.pivotTol < 0 || math.IsNaN(cfg.pivotTol) || math.IsInf(cfg.pivotTol, 0) {
		return fmt.Errorf("pivot-tol %g: %w", cfg.pivotTol, errConfig)
	}
	if cfg.maxElements < 0 {
		return fmt.Errorf("max-elements %d: %w", cfg.maxElements, errConfig)
	}
	if cfg.maxOrder < 0 {
		return fmt.Errorf("max-order %d: %w", cfg.maxOrder, errConfig)
	}

	pts, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	maxOrder := cfg.maxOrder
	if maxOrder == 0 {
		maxOrder = pts.Len()
	}
	zap.S().Debugw("fitting", "points", pts.Len(), "maxOrder", maxOrder)

	fits, err := lsq.FitOrders(ctx, pts, maxOrder,
		lsq.WithPivotTolerance(cfg.pivotTol),
		lsq.WithMaxElements(cfg.maxElements),
		lsq.WithLogger(zap.L()),
	)
	if err != nil {
		return err
	}

	var text []byte
	for _, f := range fits {
		fmt.Fprintf(w, "- Order: %d\n", f.Order)
		if f.Err != nil {
			return fmt.Errorf("order %d: fit failed: %s: %w", f.Order, lsq.StatusOf(f.Err), f.Err)
		}

		if size := poly.Sprint(nil, f.Coefficients); size > cap(text) {
			text = make([]byte, size)
		}
		n := poly.Sprint(text[:cap(text)], f.Coefficients)
		fmt.Fprintf(w, "  f(x) = %s\n", text[:n])

		margin, err := lsq.AbsError(pts, f.Coefficients)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  error = %f\n\n", margin)
	}

	return nil
}

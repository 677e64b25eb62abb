// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyfit/lsq"
)

// loadPoints returns the CSV samples named by cfg.input, or cfg.points
// samples of cos(4x/π) at x = 0, 1, ….
func loadPoints(cfg config) (lsq.Points, error) {
	if cfg.input == "" {
		if cfg.points < 1 {
			return nil, fmt.Errorf("points %d: %w", cfg.points, errConfig)
		}

		return cosineSamples(cfg.points), nil
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.input, err)
	}

	return pts, nil
}

// cosineSamples serves cos(4x/π) at x = i without materialising slices.
func cosineSamples(n int) lsq.PointsFunc {
	return lsq.PointsFunc{
		N:     n,
		XFunc: func(i int) float64 { return float64(i) },
		YFunc: func(i int) float64 { return math.Cos(4 / math.Pi * float64(i)) },
	}
}

var errNoSamples = errors.New("no samples")

// readCSV parses "x,y" records. Lines starting with '#' are comments and a
// first record whose fields are not numbers is taken as a header.
func readCSV(r io.Reader) (lsq.ArrayPoints, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var pts lsq.ArrayPoints
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return lsq.ArrayPoints{}, err
		}
		line, _ := cr.FieldPos(0)

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if first && errX != nil && errY != nil {
			continue // header
		}
		if err = errors.Join(errX, errY); err != nil {
			return lsq.ArrayPoints{}, fmt.Errorf("line %d: %w", line, err)
		}
		pts.Xs = append(pts.Xs, x)
		pts.Ys = append(pts.Ys, y)
	}
	if pts.Len() == 0 {
		return lsq.ArrayPoints{}, errNoSamples
	}

	return pts, nil
}

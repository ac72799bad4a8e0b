// Package timing measures how long the rasterization algorithms take.
//
// Measure times a single call, the way the viewer reports it after every
// redraw. Sample and Compare repeat calls and summarize the wall-clock
// samples with gonum/stat, since one call of a few hundred nanoseconds is
// dominated by clock and scheduling noise.
package timing

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/rasterlab"
)

// ErrNoRuns is returned when a sample is requested with fewer than one run.
var ErrNoRuns = errors.New("timing: runs must be positive")

// Result is the outcome of one timed rasterization.
type Result struct {
	Algorithm rasterlab.Algorithm
	Params    rasterlab.Params
	Points    []rasterlab.GridPoint
	Elapsed   time.Duration
}

// Measure runs algorithm a once on p and records the wall-clock time of the
// call.
func Measure(a rasterlab.Algorithm, p rasterlab.Params) Result {
	start := time.Now()
	points := rasterlab.Rasterize(a, p)
	elapsed := time.Since(start)
	return Result{
		Algorithm: a,
		Params:    p,
		Points:    points,
		Elapsed:   elapsed,
	}
}

// Stats summarizes repeated measurements of one algorithm.
type Stats struct {
	Algorithm rasterlab.Algorithm
	Runs      int
	Points    int
	Mean      time.Duration
	StdDev    time.Duration
	Min       time.Duration
	Median    time.Duration
	Max       time.Duration
}

// Sample measures algorithm a on p runs times.
func Sample(a rasterlab.Algorithm, p rasterlab.Params, runs int) (Stats, error) {
	if runs < 1 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrNoRuns, runs)
	}
	if !a.Valid() {
		return Stats{}, fmt.Errorf("timing: %w: %d", rasterlab.ErrUnknownAlgorithm, int(a))
	}

	samples := make([]float64, runs)
	points := 0
	for i := range samples {
		r := Measure(a, p)
		samples[i] = float64(r.Elapsed)
		points = len(r.Points)
	}

	s := summarize(a, points, samples)
	rasterlab.Logger().Debug("timing: sample",
		"algorithm", a.String(), "runs", runs,
		"mean", s.Mean, "median", s.Median, "stddev", s.StdDev)
	return s, nil
}

// Compare samples every algorithm on the same parameters, in
// presentation order.
func Compare(p rasterlab.Params, runs int) ([]Stats, error) {
	all := rasterlab.Algorithms()
	out := make([]Stats, 0, len(all))
	for _, a := range all {
		s, err := Sample(a, p, runs)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// summarize reduces nanosecond samples to Stats. samples is not modified.
func summarize(a rasterlab.Algorithm, points int, samples []float64) Stats {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if math.IsNaN(std) {
		// A single sample has no spread.
		std = 0
	}

	return Stats{
		Algorithm: a,
		Runs:      len(samples),
		Points:    points,
		Mean:      time.Duration(math.Round(mean)),
		StdDev:    time.Duration(math.Round(std)),
		Min:       time.Duration(floats.Min(sorted)),
		Median:    time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		Max:       time.Duration(floats.Max(sorted)),
	}
}

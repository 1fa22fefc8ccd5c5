// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package fst

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary contains descriptive statistics
// of a set of values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize returns the descriptive statistics
// of a set of values.
// The standard deviation is NaN
// if there are less than two values.
// If any value is NaN,
// all the statistics are NaN.
func Summarize(values []float64) Summary {
	if len(values) == 0 || floats.HasNaN(values) {
		nan := math.NaN()
		return Summary{N: len(values), Mean: nan, StdDev: nan, Min: nan, Max: nan}
	}

	mean, sd := stat.MeanStdDev(values, nil)
	return Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: sd,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

// A Bin is a histogram bin
// in the interval [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram returns the counts of the values
// in the indicated number of equal-width bins
// spanning from the minimum to the maximum value.
// The maximum value is counted in the last bin.
func Histogram(values []float64, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("invalid number of bins: %d", bins)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("histogram: empty data")
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("histogram: invalid value %g", v)
		}
	}

	x := slices.Clone(values)
	slices.Sort(x)

	min, max := x[0], x[len(x)-1]
	if min == max {
		min -= 0.5
		max += 0.5
	}
	div := floats.Span(make([]float64, bins+1), min, max)
	// the last divider is exclusive
	// so it is moved up to include the maximum
	last := max
	div[bins] = math.Nextafter(max, math.Inf(1))

	count := stat.Histogram(nil, div, x, nil)
	hist := make([]Bin, bins)
	for i, c := range count {
		hist[i] = Bin{
			Lo:    div[i],
			Hi:    div[i+1],
			Count: int(c),
		}
	}
	hist[bins-1].Hi = last
	return hist, nil
}

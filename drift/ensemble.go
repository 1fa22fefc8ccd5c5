// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package drift

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// An Ensemble is a collection of independent sample paths
// simulated under the same model.
type Ensemble struct {
	m     Model
	paths [][]float64
}

// New creates an empty ensemble
// for a given model.
func New(m Model) (*Ensemble, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Ensemble{m: m}, nil
}

// Add adds a sample path to the ensemble.
// The path must have the length defined by the model
// and all of its values must be frequencies.
func (e *Ensemble) Add(path []float64) error {
	if len(path) != e.m.Generations+1 {
		return fmt.Errorf("%w: path with %d generations, want %d", ErrInvalidArgument, len(path)-1, e.m.Generations)
	}
	for i, v := range path {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: generation %d: frequency %.6f", ErrInvalidArgument, i, v)
		}
	}
	cp := make([]float64, len(path))
	copy(cp, path)
	e.paths = append(e.paths, cp)
	return nil
}

// Len returns the number of paths in the ensemble.
func (e *Ensemble) Len() int {
	return len(e.paths)
}

// Model returns the model of the ensemble.
func (e *Ensemble) Model() Model {
	return e.m
}

// Path returns the i-th path of the ensemble.
func (e *Ensemble) Path(i int) []float64 {
	return e.paths[i]
}

// Generation returns the frequencies of all paths
// at a given generation.
func (e *Ensemble) Generation(t int) []float64 {
	x := make([]float64, 0, len(e.paths))
	for _, p := range e.paths {
		x = append(x, p[t])
	}
	return x
}

// Mean returns the mean frequency at each generation.
func (e *Ensemble) Mean() []float64 {
	if len(e.paths) == 0 {
		return nil
	}
	mean := make([]float64, e.m.Generations+1)
	for t := range mean {
		mean[t] = stat.Mean(e.Generation(t), nil)
	}
	return mean
}

// Variance returns the unbiased sample variance
// (i.e., the sum of squares divided by M-1)
// of the frequencies at each generation.
// It returns nil if the ensemble has less than two paths.
func (e *Ensemble) Variance() []float64 {
	if len(e.paths) < 2 {
		return nil
	}
	v := make([]float64, e.m.Generations+1)
	for t := range v {
		x := e.Generation(t)
		if constant(x) {
			continue
		}
		v[t] = stat.Variance(x, nil)
	}
	return v
}

// Heterozygosity returns the mean of the expected heterozygosity,
// 2p(1-p),
// at each generation.
func (e *Ensemble) Heterozygosity() []float64 {
	if len(e.paths) == 0 {
		return nil
	}
	h := make([]float64, e.m.Generations+1)
	for t := range h {
		x := e.Generation(t)
		for i, p := range x {
			x[i] = 2 * p * (1 - p)
		}
		h[t] = stat.Mean(x, nil)
	}
	return h
}

// Fixation returns the number of paths
// in which the allele is lost
// (frequency 0)
// and fixed
// (frequency 1)
// at each generation.
func (e *Ensemble) Fixation() (lost, fixed []int) {
	lost = make([]int, e.m.Generations+1)
	fixed = make([]int, e.m.Generations+1)
	for _, p := range e.paths {
		for t, v := range p {
			switch v {
			case 0:
				lost[t]++
			case 1:
				fixed[t]++
			}
		}
	}
	return lost, fixed
}

// Constant returns true if all values are identical.
func constant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

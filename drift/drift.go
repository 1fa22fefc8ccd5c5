// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package drift implements a Wright-Fisher simulation
// of the allele frequency
// in a finite population.
//
// In each generation,
// every offspring inherits the allele
// of a randomly chosen parent,
// so the number of copies of the allele
// in the new generation
// is a binomial draw over the population size
// with the parental frequency
// as the success probability.
package drift

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidArgument is returned
// when a simulation is requested
// with invalid parameters.
var ErrInvalidArgument = errors.New("drift: invalid argument")

// A Model is the set of parameters
// of a Wright-Fisher simulation.
type Model struct {
	// Size is the number of individuals
	// in the population.
	Size int

	// Generations is the number of simulated generations.
	Generations int

	// Start is the allele frequency
	// at generation 0.
	Start float64
}

// Validate returns an error
// if the model parameters are not valid.
func (m Model) Validate() error {
	if m.Size < 1 {
		return fmt.Errorf("%w: population size %d", ErrInvalidArgument, m.Size)
	}
	if m.Generations < 0 {
		return fmt.Errorf("%w: generations %d", ErrInvalidArgument, m.Generations)
	}
	if math.IsNaN(m.Start) || m.Start < 0 || m.Start > 1 {
		return fmt.Errorf("%w: start frequency %.6f", ErrInvalidArgument, m.Start)
	}
	return nil
}

// Simulate returns a sample path of the allele frequency
// for a population of the given size
// over the indicated number of generations,
// starting at the indicated frequency.
//
// The returned path has generations+1 elements,
// the first one being the start frequency.
// Every other element is k/size,
// for an integer k in [0, size].
//
// The random source src is used for the binomial draws.
// If src is nil,
// the global source will be used.
func Simulate(size, generations int, start float64, src rand.Source) ([]float64, error) {
	m := Model{
		Size:        size,
		Generations: generations,
		Start:       start,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.path(src), nil
}

func (m Model) path(src rand.Source) []float64 {
	path := make([]float64, m.Generations+1)
	path[0] = m.Start

	n := float64(m.Size)
	b := distuv.Binomial{
		N:   n,
		Src: src,
	}
	for i := 1; i < len(path); i++ {
		p := path[i-1]

		// fixation or loss are absorbing
		if p == 0 || p == 1 {
			path[i] = p
			continue
		}

		b.P = p
		k := math.Round(b.Rand())
		path[i] = k / n
	}
	return path
}

// ExpectedVariance returns the expected variance
// of the allele frequency
// at generation t
// under the given model.
//
// As t grows,
// the value converges to the Bernoulli variance
// Start*(1-Start)
// of a population in which the allele is either
// fixed or lost.
func ExpectedVariance(m Model, t int) float64 {
	if t <= 0 {
		return 0
	}
	h := m.Start * (1 - m.Start)
	return h * (1 - math.Pow(1-1/float64(m.Size), float64(t)))
}

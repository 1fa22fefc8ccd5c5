// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package drift

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
)

type pathChanType struct {
	start, end int
	seed       uint64
	m          Model
	paths      [][]float64

	wg *sync.WaitGroup
}

// NewEnsemble simulates an ensemble
// with the indicated number of replicates.
//
// Each replicate i uses its own random source
// seeded with seed+i,
// so the ensemble is the same
// regardless of the number of process.
// Use cpu to define the number of process
// used for the simulation.
// The default (zero) uses all available CPU.
func NewEnsemble(m Model, replicates int, seed uint64, cpu int) (*Ensemble, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if replicates < 1 {
		return nil, fmt.Errorf("%w: replicates %d", ErrInvalidArgument, replicates)
	}
	if cpu <= 0 {
		cpu = runtime.NumCPU()
	}

	paths := make([][]float64, replicates)

	pathChan := make(chan pathChanType, cpu*2)
	for range cpu {
		go runSimPath(pathChan)
	}

	// split the replicates in blocks
	// so each goroutine does a reasonable amount of work
	block := replicates / (cpu * 4)
	if block < 1 {
		block = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < replicates; start += block {
		end := start + block
		if end > replicates {
			end = replicates
		}
		wg.Add(1)
		pathChan <- pathChanType{
			start: start,
			end:   end,
			seed:  seed,
			m:     m,
			paths: paths,
			wg:    &wg,
		}
	}
	wg.Wait()
	close(pathChan)

	return &Ensemble{
		m:     m,
		paths: paths,
	}, nil
}

func runSimPath(pc chan pathChanType) {
	for c := range pc {
		for i := c.start; i < c.end; i++ {
			src := rand.NewSource(c.seed + uint64(i))
			c.paths[i] = c.m.path(src)
		}
		c.wg.Done()
	}
}

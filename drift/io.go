// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package drift

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

var header = []string{
	"replicate",
	"size",
	"generation",
	"frequency",
}

// ReadTSV reads an ensemble of sample paths
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - replicate, the ID of the sample path
//   - size, the population size
//   - generation, the generation of the sample
//   - frequency, the allele frequency at that generation
//
// Here is an example file:
//
//	# drift simulation paths
//	replicate	size	generation	frequency
//	0	10	0	0.500000
//	0	10	1	0.600000
//	0	10	2	0.400000
//	1	10	0	0.500000
//	1	10	1	0.300000
//	1	10	2	0.300000
//
// All replicates must share the population size,
// the start frequency,
// and the number of generations.
func ReadTSV(r io.Reader) (*Ensemble, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	size := 0
	maxGen := 0
	reps := make(map[int]map[int]float64)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "replicate"
		rep, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "size"
		sz, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if sz < 1 {
			return nil, fmt.Errorf("on row %d: field %q: invalid population size %d", ln, f, sz)
		}
		if size == 0 {
			size = sz
		}
		if sz != size {
			return nil, fmt.Errorf("on row %d: field %q: got %d, want %d", ln, f, sz, size)
		}

		f = "generation"
		gen, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if gen < 0 {
			return nil, fmt.Errorf("on row %d: field %q: invalid value %d", ln, f, gen)
		}
		if gen > maxGen {
			maxGen = gen
		}

		f = "frequency"
		freq, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		p, ok := reps[rep]
		if !ok {
			p = make(map[int]float64)
			reps[rep] = p
		}
		p[gen] = freq
	}
	if len(reps) == 0 {
		return nil, fmt.Errorf("while reading data: %v", io.EOF)
	}

	ids := make([]int, 0, len(reps))
	for id := range reps {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var e *Ensemble
	for _, id := range ids {
		p := reps[id]
		path := make([]float64, maxGen+1)
		for g := range path {
			v, ok := p[g]
			if !ok {
				return nil, fmt.Errorf("replicate %d: undefined generation %d", id, g)
			}
			path[g] = v
		}
		if e == nil {
			m := Model{
				Size:        size,
				Generations: maxGen,
				Start:       path[0],
			}
			e, err = New(m)
			if err != nil {
				return nil, fmt.Errorf("replicate %d: %w", id, err)
			}
		}
		if path[0] != e.m.Start {
			return nil, fmt.Errorf("replicate %d: start frequency %.6f, want %.6f", id, path[0], e.m.Start)
		}
		if err := e.Add(path); err != nil {
			return nil, fmt.Errorf("replicate %d: %w", id, err)
		}
	}
	return e, nil
}

// TSV writes the ensemble as a TSV file.
// If seed is not zero,
// it will be recorded as a comment.
func (e *Ensemble) TSV(w io.Writer, seed uint64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# drift simulation paths\n")
	fmt.Fprintf(bw, "# population size: %d\n", e.m.Size)
	fmt.Fprintf(bw, "# start frequency: %.6f\n", e.m.Start)
	if seed != 0 {
		fmt.Fprintf(bw, "# seed: %d\n", seed)
	}
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tab := csv.NewWriter(bw)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	sz := strconv.Itoa(e.m.Size)
	for i, p := range e.paths {
		id := strconv.Itoa(i)
		for g, v := range p {
			row := []string{
				id,
				sz,
				strconv.Itoa(g),
				strconv.FormatFloat(v, 'f', -1, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

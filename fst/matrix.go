// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package fst

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// A Matrix is a square matrix
// of pairwise values
// indexed by population names.
//
// Cells are independent:
// the value of (a,b)
// is not assumed to be equal to (b,a).
type Matrix struct {
	labels []string
	index  map[string]int
	m      [][]float64
	def    [][]bool
}

// NewMatrix creates an empty matrix
// for the given populations.
func NewMatrix(pops []string) *Matrix {
	index := make(map[string]int, len(pops))
	labels := make([]string, 0, len(pops))
	for _, p := range pops {
		if _, ok := index[p]; ok {
			continue
		}
		index[p] = len(labels)
		labels = append(labels, p)
	}

	m := make([][]float64, len(labels))
	def := make([][]bool, len(labels))
	for i := range m {
		m[i] = make([]float64, len(labels))
		def[i] = make([]bool, len(labels))
		for j := range m[i] {
			m[i][j] = math.NaN()
		}
	}

	return &Matrix{
		labels: labels,
		index:  index,
		m:      m,
		def:    def,
	}
}

// Pivot builds a pairwise matrix from a table.
// The matrix is indexed by the sorted names
// of the populations in the table,
// and each cell (a,b) is the estimate
// of the row with that pair.
//
// The table should contain a single statistic
// (see Table.Filter).
// If two rows define the same pair
// with different values,
// an error wrapping ErrDuplicatePair is returned.
func Pivot(t *Table) (*Matrix, error) {
	m := NewMatrix(t.Populations())
	for _, r := range t.rows {
		if v, ok := m.value(r.A, r.B); ok {
			if v == r.Estimate {
				continue
			}
			return nil, fmt.Errorf("%w: %q-%q: values %g and %g", ErrDuplicatePair, r.A, r.B, v, r.Estimate)
		}
		m.Set(r.A, r.B, r.Estimate)
	}
	return m, nil
}

// At returns the value of the pair (a,b).
// If the pair is not defined,
// it returns an error wrapping ErrMissingPair.
func (m *Matrix) At(a, b string) (float64, error) {
	v, ok := m.value(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %q-%q", ErrMissingPair, a, b)
	}
	return v, nil
}

// Labels returns the population names
// in the order used by the matrix.
func (m *Matrix) Labels() []string {
	ls := make([]string, len(m.labels))
	copy(ls, m.labels)
	return ls
}

// Len returns the number of populations
// in the matrix.
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Missing returns the pairs
// that are undefined in the matrix.
func (m *Matrix) Missing() [][2]string {
	var miss [][2]string
	for i, a := range m.labels {
		for j, b := range m.labels {
			if m.def[i][j] {
				continue
			}
			miss = append(miss, [2]string{a, b})
		}
	}
	return miss
}

// Set sets the value of the pair (a,b).
// If a population is not in the matrix,
// it is ignored.
func (m *Matrix) Set(a, b string, v float64) {
	i, ok := m.index[a]
	if !ok {
		return
	}
	j, ok := m.index[b]
	if !ok {
		return
	}
	m.m[i][j] = v
	m.def[i][j] = true
}

// Value returns the value of the cell at row i
// and column j,
// and true if the cell is defined.
func (m *Matrix) Value(i, j int) (float64, bool) {
	if !m.def[i][j] {
		return math.NaN(), false
	}
	return m.m[i][j], true
}

func (m *Matrix) value(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	if !m.def[i][j] {
		return 0, false
	}
	return m.m[i][j], true
}

// TSV writes the matrix as a TSV file.
// The first column contains the row population,
// and each other column is a population.
// Undefined pairs are written as "NA".
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"population"}, m.labels...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, a := range m.labels {
		row := []string{a}
		for j := range m.labels {
			v, ok := m.Value(i, j)
			if !ok {
				row = append(row, "NA")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

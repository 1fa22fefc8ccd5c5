// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fst implements reading and reshaping
// of tables of pairwise population statistics
// (such as Fst or F2)
// produced by an external statistics tool.
//
// The table is taken as is:
// symmetric pairs (A,B) and (B,A),
// as well as self pairs (A,A),
// are kept as independent rows.
package fst

import (
	"errors"
	"math"
	"slices"
	"strings"
)

// Errors returned when reading or reshaping a table.
var (
	// ErrMissingColumn is returned when a table
	// lacks a required column.
	ErrMissingColumn = errors.New("fst: missing column")

	// ErrMalformedRow is returned when a row
	// can not be parsed.
	ErrMalformedRow = errors.New("fst: malformed row")

	// ErrMissingPair is returned when a pair of populations
	// is not defined in a pairwise matrix.
	ErrMissingPair = errors.New("fst: missing pair")

	// ErrDuplicatePair is returned when a pair of populations
	// has more than one value
	// when building a pairwise matrix.
	ErrDuplicatePair = errors.New("fst: duplicated pair")
)

// Common statistic names.
const (
	FST = "FST"
	F2  = "F2"
)

// A Row is a single estimate of a statistic
// for a pair of populations.
type Row struct {
	// Statistic is the name of the statistic
	// (e.g. "FST" or "F2").
	Statistic string

	// A and B are the populations of the pair.
	A, B string

	// Estimate is the point estimate
	// over the whole data.
	Estimate float64

	// Jackknife is the jackknife estimate
	// of the statistic.
	// It is NaN if undefined.
	Jackknife float64

	// StdErr is the jackknife standard error.
	// It is NaN if undefined.
	StdErr float64
}

// A Table is a collection of pairwise statistics.
type Table struct {
	rows []Row
}

// New creates a new empty table.
func New() *Table {
	return &Table{}
}

// Add adds a row to the table.
func (t *Table) Add(r Row) {
	t.rows = append(t.rows, r)
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the rows of the table
// in the reading order.
func (t *Table) Rows() []Row {
	return slices.Clone(t.rows)
}

// Filter returns a new table
// with the rows of the indicated statistic.
// Statistic names are compared without case.
func (t *Table) Filter(statistic string) *Table {
	statistic = strings.TrimSpace(statistic)
	nt := New()
	for _, r := range t.rows {
		if strings.EqualFold(r.Statistic, statistic) {
			nt.rows = append(nt.rows, r)
		}
	}
	return nt
}

// Estimates returns the point estimates
// of all rows in the table.
func (t *Table) Estimates() []float64 {
	v := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		v = append(v, r.Estimate)
	}
	return v
}

// Populations returns the sorted names
// of the populations in the table.
func (t *Table) Populations() []string {
	pops := make(map[string]bool)
	for _, r := range t.rows {
		pops[r.A] = true
		pops[r.B] = true
	}
	return sortedKeys(pops)
}

// Statistics returns the sorted names
// of the statistics in the table.
func (t *Table) Statistics() []string {
	st := make(map[string]bool)
	for _, r := range t.rows {
		st[r.Statistic] = true
	}
	return sortedKeys(st)
}

// HasJackknife returns true if any row
// has a jackknife estimate.
func (t *Table) HasJackknife() bool {
	for _, r := range t.rows {
		if !math.IsNaN(r.Jackknife) || !math.IsNaN(r.StdErr) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	ls := make([]string, 0, len(m))
	for k := range m {
		ls = append(ls, k)
	}
	slices.Sort(ls)
	return ls
}

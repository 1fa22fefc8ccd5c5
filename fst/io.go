// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package fst

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Required fields of a statistics table.
var header = []string{
	"statistic",
	"a",
	"b",
	"estimate_total",
}

var outHeader = []string{
	"Statistic",
	"a",
	"b",
	"Estimate_Total",
	"Estimate_Jackknife",
	"SE_Jackknife",
}

// Accepted names for the optional jackknife fields.
var (
	jackknifeFields = []string{"estimate_jackknife", "jackknife_estimate", "jackknife"}
	stdErrFields    = []string{"se_jackknife", "jackknife_se", "se"}
)

// ReadTSV reads a table of pairwise statistics
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - statistic, the name of the statistic (e.g. FST or F2)
//   - a, the first population of the pair
//   - b, the second population of the pair
//   - estimate_total, the point estimate of the statistic
//
// Optionally it can contain the field estimate_jackknife,
// with the jackknife estimate,
// and se_jackknife,
// with the jackknife standard error.
// Any other field will be ignored.
// Field names are case insensitive.
//
// Here is an example file:
//
//	Statistic	a	b	Estimate_Total	Estimate_Jackknife	SE_Jackknife
//	FST	Pop1	Pop1	0.0	0.0	0.0
//	FST	Pop1	Pop2	0.02	0.0201	0.001
//	FST	Pop2	Pop1	0.019	0.0192	0.001
//	F2	Pop1	Pop2	0.004	0.0041	0.0002
func ReadTSV(r io.Reader) (*Table, error) {
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
			return nil, fmt.Errorf("%w: expecting field %q", ErrMissingColumn, h)
		}
	}
	jkField := findField(fields, jackknifeFields)
	seField := findField(fields, stdErrFields)

	t := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("%w: on row %d: %v", ErrMalformedRow, ln, err)
		}

		r := Row{
			Jackknife: math.NaN(),
			StdErr:    math.NaN(),
		}

		f := "statistic"
		r.Statistic = strings.TrimSpace(row[fields[f]])
		if r.Statistic == "" {
			return nil, fmt.Errorf("%w: on row %d: field %q: empty value", ErrMalformedRow, ln, f)
		}

		f = "a"
		r.A = strings.TrimSpace(row[fields[f]])
		if r.A == "" {
			return nil, fmt.Errorf("%w: on row %d: field %q: empty value", ErrMalformedRow, ln, f)
		}

		f = "b"
		r.B = strings.TrimSpace(row[fields[f]])
		if r.B == "" {
			return nil, fmt.Errorf("%w: on row %d: field %q: empty value", ErrMalformedRow, ln, f)
		}

		f = "estimate_total"
		r.Estimate, err = parseFinite(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("%w: on row %d: field %q: %v", ErrMalformedRow, ln, f, err)
		}

		if jkField != "" {
			r.Jackknife, err = parseOptional(row[fields[jkField]])
			if err != nil {
				return nil, fmt.Errorf("%w: on row %d: field %q: %v", ErrMalformedRow, ln, jkField, err)
			}
		}
		if seField != "" {
			r.StdErr, err = parseOptional(row[fields[seField]])
			if err != nil {
				return nil, fmt.Errorf("%w: on row %d: field %q: %v", ErrMalformedRow, ln, seField, err)
			}
		}

		t.Add(r)
	}
	return t, nil
}

// TSV writes a table as a TSV file.
func (t *Table) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(outHeader); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, r := range t.rows {
		row := []string{
			r.Statistic,
			r.A,
			r.B,
			strconv.FormatFloat(r.Estimate, 'f', -1, 64),
			formatOptional(r.Jackknife),
			formatOptional(r.StdErr),
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

func findField(fields map[string]int, names []string) string {
	for _, n := range names {
		if _, ok := fields[n]; ok {
			return n
		}
	}
	return ""
}

// ParseOptional parses an optional numeric value,
// empty values
// (or "NA")
// are returned as NaN.
func parseOptional(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") {
		return math.NaN(), nil
	}
	return parseFinite(s)
}

// ParseFinite parses a number
// and rejects NaN and infinite values.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return v, nil
}

func formatOptional(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

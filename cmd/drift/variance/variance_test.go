// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package variance

import (
	"bytes"
	"strings"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/drift"
)

func TestWriteVariance(t *testing.T) {
	e, err := drift.New(drift.Model{Size: 10, Generations: 2, Start: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range [][]float64{
		{0.5, 0.6, 1},
		{0.5, 0.4, 0.3},
	} {
		if err := e.Add(p); err != nil {
			t.Fatalf("add path %v: %v", p, err)
		}
	}

	var buf bytes.Buffer
	if err := writeVariance(&buf, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []string
	for _, ln := range strings.Split(buf.String(), "\n") {
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		rows = append(rows, ln)
	}
	want := []string{
		strings.TrimSuffix(header, "\n"),
		"0\t0.500000\t0.000000\t0.000000\t0.500000\t0\t0",
		"1\t0.500000\t0.020000\t0.025000\t0.480000\t0\t0",
		"2\t0.650000\t0.245000\t0.047500\t0.210000\t0\t1",
	}
	if len(rows) != len(want) {
		t.Fatalf("rows: got %d, want %d:\n%s", len(rows), len(want), buf.String())
	}
	for i, r := range rows {
		if r != want[i] {
			t.Errorf("row %d: got %q, want %q", i, r, want[i])
		}
	}
}

func TestWriteVarianceSingle(t *testing.T) {
	e, err := drift.New(drift.Model{Size: 4, Generations: 1, Start: 0.25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Add([]float64{0.25, 0}); err != nil {
		t.Fatalf("add path: %v", err)
	}

	var buf bytes.Buffer
	if err := writeVariance(&buf, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "1\t0.000000\tNA\t") {
		t.Errorf("single replicate: expecting NA variance:\n%s", buf.String())
	}
}

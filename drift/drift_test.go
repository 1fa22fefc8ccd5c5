// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package drift_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/drift"
	"golang.org/x/exp/rand"
)

func TestSimulate(t *testing.T) {
	tests := map[string]struct {
		size  int
		gens  int
		start float64
	}{
		"small":           {10, 50, 0.5},
		"large":           {1000, 200, 0.1},
		"single":          {1, 10, 0.3},
		"zero generation": {20, 0, 0.25},
		"odd size":        {7, 100, 0.9},
	}

	for name, test := range tests {
		src := rand.NewSource(1)
		path, err := drift.Simulate(test.size, test.gens, test.start, src)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		testPath(t, name, path, test.size, test.gens, test.start)
	}
}

func TestSimulateFixation(t *testing.T) {
	for _, start := range []float64{0, 1} {
		path, err := drift.Simulate(50, 100, start, rand.NewSource(7))
		if err != nil {
			t.Fatalf("start %.0f: unexpected error: %v", start, err)
		}
		for i, v := range path {
			if v != start {
				t.Errorf("start %.0f: generation %d: got %.6f, want %.6f", start, i, v, start)
			}
		}
	}
}

func TestSimulateSeed(t *testing.T) {
	p1, err := drift.Simulate(100, 100, 0.5, rand.NewSource(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := drift.Simulate(100, 100, 0.5, rand.NewSource(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Errorf("paths with the same seed are different:\n%v\n%v", p1, p2)
	}
}

func TestSimulateInvalid(t *testing.T) {
	tests := map[string]struct {
		size  int
		gens  int
		start float64
	}{
		"zero size":      {0, 10, 0.5},
		"negative size":  {-3, 10, 0.5},
		"negative gens":  {10, -1, 0.5},
		"frequency > 1":  {10, 10, 1.5},
		"frequency < 0":  {10, 10, -0.1},
		"frequency NaN":  {10, 10, math.NaN()},
		"all is invalid": {0, -1, 2},
	}

	for name, test := range tests {
		path, err := drift.Simulate(test.size, test.gens, test.start, nil)
		if !errors.Is(err, drift.ErrInvalidArgument) {
			t.Errorf("%s: got error %v, want %v", name, err, drift.ErrInvalidArgument)
		}
		if path != nil {
			t.Errorf("%s: got path %v, want nil", name, path)
		}
	}
}

func TestExpectedVariance(t *testing.T) {
	m := drift.Model{Size: 10, Generations: 100, Start: 0.5}
	if v := drift.ExpectedVariance(m, 0); v != 0 {
		t.Errorf("generation 0: got %.6f, want 0", v)
	}
	want := 0.25 * 0.1
	if v := drift.ExpectedVariance(m, 1); math.Abs(v-want) > 1e-12 {
		t.Errorf("generation 1: got %.6f, want %.6f", v, want)
	}

	prev := 0.0
	for g := 1; g <= 1000; g++ {
		v := drift.ExpectedVariance(m, g)
		if v < prev {
			t.Errorf("generation %d: variance %.6f decreases from %.6f", g, v, prev)
		}
		if v > 0.25 {
			t.Errorf("generation %d: variance %.6f greater than 0.25", g, v)
		}
		prev = v
	}
	if math.Abs(prev-0.25) > 1e-9 {
		t.Errorf("plateau: got %.6f, want %.6f", prev, 0.25)
	}
}

func testPath(t testing.TB, name string, path []float64, size, gens int, start float64) {
	t.Helper()

	if len(path) != gens+1 {
		t.Fatalf("%s: length: got %d, want %d", name, len(path), gens+1)
	}
	if path[0] != start {
		t.Errorf("%s: start: got %.6f, want %.6f", name, path[0], start)
	}
	n := float64(size)
	for i, v := range path[1:] {
		if v < 0 || v > 1 {
			t.Errorf("%s: generation %d: invalid frequency %.6f", name, i+1, v)
		}
		k := v * n
		if math.Abs(k-math.Round(k)) > 1e-9 {
			t.Errorf("%s: generation %d: frequency %.6f is not a multiple of 1/%d", name, i+1, v, size)
		}
	}
}

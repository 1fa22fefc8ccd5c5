// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/fst"
)

var blob = `Statistic	a	b	Estimate_Total
FST	Pop1	Pop1	0.0
FST	Pop1	Pop2	0.02
FST	Pop2	Pop1	0.019
`

func TestEstimates(t *testing.T) {
	tab, err := fst.ReadTSV(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := estimates(tab, false); len(got) != 3 {
		t.Errorf("all rows: got %d estimates, want %d", len(got), 3)
	}
	if got := estimates(tab, true); len(got) != 2 {
		t.Errorf("no self: got %d estimates, want %d", len(got), 2)
	}

	values := estimates(tab, false)
	bins, err := fst.Histogram(values, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := report(&buf, "fst", fst.Summarize(values), bins); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"statistic:  FST\n",
		"estimates:  3\n",
		"mean:       0.013000\n",
		"max:        0.020000\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report: expecting %q in:\n%s", want, out)
		}
	}
}

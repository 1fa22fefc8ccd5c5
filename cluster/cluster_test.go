// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/cluster"
	"github.com/EleniSef/comp-human-adna-book/fst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Four points on a line:
// A=0, B=1, C=5, D=7.
func lineDistances() ([]string, *mat.SymDense) {
	labels := []string{"A", "B", "C", "D"}
	pos := []float64{0, 1, 5, 7}
	d := mat.NewSymDense(len(pos), nil)
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			d.SetSym(i, j, math.Abs(pos[i]-pos[j]))
		}
	}
	return labels, d
}

func TestBuild(t *testing.T) {
	labels, d := lineDistances()

	tests := map[cluster.Method][]cluster.Merge{
		cluster.Single: {
			{Left: 0, Right: 1, Height: 1, Size: 2},
			{Left: 2, Right: 3, Height: 2, Size: 2},
			{Left: 4, Right: 5, Height: 4, Size: 4},
		},
		cluster.Complete: {
			{Left: 0, Right: 1, Height: 1, Size: 2},
			{Left: 2, Right: 3, Height: 2, Size: 2},
			{Left: 4, Right: 5, Height: 7, Size: 4},
		},
		cluster.Average: {
			{Left: 0, Right: 1, Height: 1, Size: 2},
			{Left: 2, Right: 3, Height: 2, Size: 2},
			{Left: 4, Right: 5, Height: 5.5, Size: 4},
		},
	}

	for m, want := range tests {
		dn, err := cluster.Build(labels, d, m)
		require.NoError(t, err, string(m))
		got := dn.Merges()
		require.Len(t, got, len(want), string(m))
		for i, w := range want {
			assert.Equal(t, w.Left, got[i].Left, "%s: merge %d", m, i)
			assert.Equal(t, w.Right, got[i].Right, "%s: merge %d", m, i)
			assert.Equal(t, w.Size, got[i].Size, "%s: merge %d", m, i)
			assert.InDelta(t, w.Height, got[i].Height, 1e-12, "%s: merge %d", m, i)
		}
		assert.Equal(t, []int{0, 1, 2, 3}, dn.Leaves(), string(m))
	}
}

func TestWard(t *testing.T) {
	labels, d := lineDistances()
	dn, err := cluster.Build(labels, d, cluster.Ward)
	require.NoError(t, err)

	got := dn.Merges()
	require.Len(t, got, 3)
	assert.Equal(t, cluster.Merge{Left: 0, Right: 1, Height: 1, Size: 2}, got[0])
	assert.Equal(t, cluster.Merge{Left: 2, Right: 3, Height: 2, Size: 2}, got[1])

	// Ward distance between {A,B} and {C,D}
	// is sqrt(2*n1*n2/(n1+n2)) times the distance of the centroids
	// (0.5 and 6).
	want := math.Sqrt(2*2*2/4.0) * 5.5
	assert.InDelta(t, want, got[2].Height, 1e-9)
	assert.Equal(t, 4, got[2].Size)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Height, got[i-1].Height)
	}
}

func TestFromTable(t *testing.T) {
	tab := fst.New()
	rows := []fst.Row{
		{Statistic: fst.FST, A: "Pop1", B: "Pop1", Estimate: 0},
		{Statistic: fst.FST, A: "Pop1", B: "Pop2", Estimate: 0.02},
		{Statistic: fst.FST, A: "Pop2", B: "Pop1", Estimate: 0.019},
		{Statistic: fst.FST, A: "Pop1", B: "Pop3", Estimate: 0.1},
		{Statistic: fst.FST, A: "Pop2", B: "Pop3", Estimate: 0.12},
		{Statistic: fst.FST, A: "Pop3", B: "Pop4", Estimate: 0.01},
		{Statistic: fst.FST, A: "Pop1", B: "Pop4", Estimate: 0.11},
		{Statistic: fst.FST, A: "Pop2", B: "Pop4", Estimate: -0.002},
	}
	for _, r := range rows {
		tab.Add(r)
	}
	m, err := fst.Pivot(tab)
	require.NoError(t, err)

	d, err := cluster.Distances(m)
	require.NoError(t, err)
	assert.InDelta(t, 0.0195, d.At(0, 1), 1e-12)
	assert.Equal(t, 0.0, d.At(1, 3), "negative values are set to 0")
	assert.Equal(t, 0.0, d.At(2, 2))

	dn, err := cluster.Build(m.Labels(), d, cluster.Average)
	require.NoError(t, err)

	first := dn.Merges()[0]
	assert.Equal(t, []string{"Pop2", "Pop4"}, dn.Members(4))
	assert.Equal(t, 0.0, first.Height)

	nw := dn.Newick()
	assert.True(t, strings.HasSuffix(nw, ";"))
	for _, p := range m.Labels() {
		assert.Contains(t, nw, p)
	}

	var w bytes.Buffer
	require.NoError(t, dn.TSV(&w))
	lines := strings.Split(strings.TrimSpace(w.String()), "\r\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "node\tleft\tright\theight\tsize\tmembers", lines[0])
}

func TestMissingDistance(t *testing.T) {
	tab := fst.New()
	tab.Add(fst.Row{Statistic: fst.FST, A: "Pop1", B: "Pop2", Estimate: 0.02})
	tab.Add(fst.Row{Statistic: fst.FST, A: "Pop1", B: "Pop3", Estimate: 0.03})
	m, err := fst.Pivot(tab)
	require.NoError(t, err)

	_, err = cluster.Distances(m)
	assert.ErrorIs(t, err, cluster.ErrMissingDistance)
}

func TestNewick(t *testing.T) {
	labels := []string{"A", "B", "C"}
	d := mat.NewSymDense(3, []float64{
		0, 2, 6,
		2, 0, 6,
		6, 6, 0,
	})
	dn, err := cluster.Build(labels, d, cluster.Average)
	require.NoError(t, err)
	assert.Equal(t, "(C:6.000000,(A:2.000000,B:2.000000):4.000000);", dn.Newick())

	single, err := cluster.Build([]string{"Pop 1"}, mat.NewSymDense(1, nil), cluster.Ward)
	require.NoError(t, err)
	assert.Empty(t, single.Merges())
	assert.Equal(t, []int{0}, single.Leaves())
	assert.Equal(t, "'Pop 1';", single.Newick())
}

func TestParseMethod(t *testing.T) {
	for _, n := range []string{"ward", "Ward", " average ", "UPGMA", "single", "complete"} {
		_, err := cluster.ParseMethod(n)
		assert.NoError(t, err, n)
	}
	_, err := cluster.ParseMethod("centroid")
	assert.ErrorIs(t, err, cluster.ErrUnknownMethod)

	labels, d := lineDistances()
	_, err = cluster.Build(labels, d, cluster.Method("median"))
	assert.ErrorIs(t, err, cluster.ErrUnknownMethod)
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cluster implements hierarchical agglomerative clustering
// of a pairwise distance matrix.
//
// Clusters are merged using the Lance-Williams update
// of the distances,
// so the different linkage methods
// share the same algorithm.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Errors returned when building a dendrogram.
var (
	// ErrMissingDistance is returned when the distance
	// between two elements is undefined.
	ErrMissingDistance = errors.New("cluster: missing distance")

	// ErrUnknownMethod is returned when
	// an invalid linkage method is requested.
	ErrUnknownMethod = errors.New("cluster: unknown method")
)

// A Method is a linkage method
// used to calculate the distance between clusters.
type Method string

// Valid linkage methods.
const (
	// Ward minimizes the increase of the within cluster variance.
	// The distances of the merged cluster are updated
	// as in scipy's Ward linkage.
	Ward Method = "ward"

	// Average uses the mean distance between the elements
	// of the clusters (UPGMA).
	Average Method = "average"

	// Complete uses the maximum distance between the elements
	// of the clusters.
	Complete Method = "complete"

	// Single uses the minimum distance between the elements
	// of the clusters.
	Single Method = "single"
)

// ParseMethod returns the linkage method
// of a given name.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case Ward, Average, Complete, Single:
		return m, nil
	case "upgma":
		return Average, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// A Pairwise is a square matrix of pairwise values.
type Pairwise interface {
	// Labels returns the names of the elements.
	Labels() []string

	// Value returns the value at row i and column j,
	// and true if the value is defined.
	Value(i, j int) (float64, bool)
}

// Distances returns a symmetric distance matrix
// from a pairwise matrix.
//
// The distance between i and j
// is the mean of the defined values
// of (i,j) and (j,i).
// If none of them is defined,
// it returns an error wrapping ErrMissingDistance.
// The diagonal is always 0,
// and negative values are set to 0.
func Distances(p Pairwise) (*mat.SymDense, error) {
	labels := p.Labels()
	if len(labels) == 0 {
		return nil, errors.New("cluster: empty matrix")
	}

	d := mat.NewSymDense(len(labels), nil)
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			var sum float64
			var n int
			if v, ok := p.Value(i, j); ok {
				sum += v
				n++
			}
			if v, ok := p.Value(j, i); ok {
				sum += v
				n++
			}
			if n == 0 {
				return nil, fmt.Errorf("%w: %q-%q", ErrMissingDistance, labels[i], labels[j])
			}
			v := sum / float64(n)
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%w: %q-%q: NaN value", ErrMissingDistance, labels[i], labels[j])
			}
			if v < 0 {
				v = 0
			}
			d.SetSym(i, j, v)
		}
	}
	return d, nil
}

// A Merge is a join of two clusters.
//
// Leaves are identified by its index
// (from 0 to n-1),
// and the cluster formed
// at the k-th merge is identified as n+k.
type Merge struct {
	Left, Right int

	// Height is the distance between the joined clusters.
	Height float64

	// Size is the number of leaves in the new cluster.
	Size int
}

// A Dendrogram is the result
// of a hierarchical clustering.
type Dendrogram struct {
	labels []string
	method Method
	merges []Merge
}

// Build makes a hierarchical clustering
// of the elements with the given labels,
// using the distance matrix d
// and the indicated linkage method.
//
// When several pairs of clusters
// are at the minimum distance,
// the pair with the lowest indexes
// is merged first.
func Build(labels []string, d mat.Symmetric, m Method) (*Dendrogram, error) {
	n := len(labels)
	if n == 0 {
		return nil, errors.New("cluster: empty matrix")
	}
	if d.SymmetricDim() != n {
		return nil, fmt.Errorf("cluster: distance matrix of size %d, want %d", d.SymmetricDim(), n)
	}
	update, ok := updates[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = d.At(i, j)
		}
	}
	id := make([]int, n)
	size := make([]int, n)
	active := make([]bool, n)
	for i := range id {
		id[i] = i
		size[i] = 1
		active[i] = true
	}

	dn := &Dendrogram{
		labels: append([]string(nil), labels...),
		method: m,
		merges: make([]Merge, 0, n-1),
	}
	for k := 0; k < n-1; k++ {
		a, b := -1, -1
		min := math.Inf(1)
		for i := range dist {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if a < 0 || dist[i][j] < min {
					a, b = i, j
					min = dist[i][j]
				}
			}
		}

		ni, nj := float64(size[a]), float64(size[b])
		for x := range dist {
			if !active[x] || x == a || x == b {
				continue
			}
			v := update(dist[a][x], dist[b][x], min, ni, nj, float64(size[x]))
			dist[a][x] = v
			dist[x][a] = v
		}

		left, right := id[a], id[b]
		if right < left {
			left, right = right, left
		}
		dn.merges = append(dn.merges, Merge{
			Left:   left,
			Right:  right,
			Height: min,
			Size:   size[a] + size[b],
		})

		id[a] = n + k
		size[a] += size[b]
		active[b] = false
	}
	return dn, nil
}

// Lance-Williams updates of the distance
// between a cluster k
// and the cluster formed by the union
// of clusters i and j.
var updates = map[Method]func(dik, djk, dij, ni, nj, nk float64) float64{
	Ward: func(dik, djk, dij, ni, nj, nk float64) float64 {
		t := 1 / (ni + nj + nk)
		v := (ni+nk)*t*dik*dik + (nj+nk)*t*djk*djk - nk*t*dij*dij
		if v < 0 {
			return 0
		}
		return math.Sqrt(v)
	},
	Average: func(dik, djk, dij, ni, nj, nk float64) float64 {
		return (ni*dik + nj*djk) / (ni + nj)
	},
	Complete: func(dik, djk, dij, ni, nj, nk float64) float64 {
		return math.Max(dik, djk)
	},
	Single: func(dik, djk, dij, ni, nj, nk float64) float64 {
		return math.Min(dik, djk)
	},
}

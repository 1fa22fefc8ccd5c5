// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Labels returns the names of the leaves.
func (d *Dendrogram) Labels() []string {
	return slices.Clone(d.labels)
}

// Method returns the linkage method
// used to build the dendrogram.
func (d *Dendrogram) Method() Method {
	return d.method
}

// Merges returns the merges of the dendrogram
// in the order they were made.
func (d *Dendrogram) Merges() []Merge {
	return slices.Clone(d.merges)
}

// Root returns the ID of the root cluster.
func (d *Dendrogram) Root() int {
	return len(d.labels) + len(d.merges) - 1
}

// IsLeaf returns true if the ID is a leaf.
func (d *Dendrogram) IsLeaf(id int) bool {
	return id < len(d.labels)
}

// Children returns the clusters joined
// to form a given cluster.
// For a leaf it returns -1, -1.
func (d *Dendrogram) Children(id int) (left, right int) {
	if d.IsLeaf(id) {
		return -1, -1
	}
	m := d.merges[id-len(d.labels)]
	return m.Left, m.Right
}

// Height returns the height of a cluster.
// Leaves have a height of 0.
func (d *Dendrogram) Height(id int) float64 {
	if d.IsLeaf(id) {
		return 0
	}
	return d.merges[id-len(d.labels)].Height
}

// Leaves returns the leaves of the dendrogram
// in display order.
func (d *Dendrogram) Leaves() []int {
	leaves := make([]int, 0, len(d.labels))
	var visit func(id int)
	visit = func(id int) {
		if d.IsLeaf(id) {
			leaves = append(leaves, id)
			return
		}
		l, r := d.Children(id)
		visit(l)
		visit(r)
	}
	visit(d.Root())
	return leaves
}

// Members returns the sorted labels
// of the leaves of a cluster.
func (d *Dendrogram) Members(id int) []string {
	var mem []string
	var visit func(id int)
	visit = func(id int) {
		if d.IsLeaf(id) {
			mem = append(mem, d.labels[id])
			return
		}
		l, r := d.Children(id)
		visit(l)
		visit(r)
	}
	visit(id)
	slices.Sort(mem)
	return mem
}

// Newick returns the dendrogram
// as a Newick tree,
// using the heights to calculate branch lengths.
func (d *Dendrogram) Newick() string {
	var b strings.Builder
	d.newick(&b, d.Root(), d.Height(d.Root()))
	b.WriteString(";")
	return b.String()
}

func (d *Dendrogram) newick(b *strings.Builder, id int, parent float64) {
	h := d.Height(id)
	if d.IsLeaf(id) {
		b.WriteString(newickName(d.labels[id]))
	} else {
		l, r := d.Children(id)
		b.WriteString("(")
		d.newick(b, l, h)
		b.WriteString(",")
		d.newick(b, r, h)
		b.WriteString(")")
	}
	if id == d.Root() {
		return
	}
	fmt.Fprintf(b, ":%s", strconv.FormatFloat(parent-h, 'f', 6, 64))
}

func newickName(name string) string {
	if !strings.ContainsAny(name, " ()[]':;,") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// TSV writes the merges of the dendrogram
// as a TSV file.
//
// The TSV file contains the following fields:
//
//   - node, the ID of the new cluster
//   - left, the ID of the first joined cluster
//   - right, the ID of the second joined cluster
//   - height, the distance between the joined clusters
//   - size, the number of leaves of the new cluster
//   - members, the labels of the leaves of the new cluster
func (d *Dendrogram) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"node", "left", "right", "height", "size", "members"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	n := len(d.labels)
	for k, m := range d.merges {
		row := []string{
			strconv.Itoa(n + k),
			d.name(m.Left),
			d.name(m.Right),
			strconv.FormatFloat(m.Height, 'f', 6, 64),
			strconv.Itoa(m.Size),
			strings.Join(d.Members(n+k), ","),
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

func (d *Dendrogram) name(id int) string {
	if d.IsLeaf(id) {
		return d.labels[id]
	}
	return strconv.Itoa(id)
}

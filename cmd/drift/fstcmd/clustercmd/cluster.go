// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clustercmd implements a command to cluster populations
// using a pairwise statistic as a distance.
package clustercmd

import (
	"fmt"
	"io"

	"github.com/EleniSef/comp-human-adna-book/cluster"
	"github.com/EleniSef/comp-human-adna-book/fst"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `cluster [--stat <name>] [--method <linkage>]
	[--newick] [--plot <file>]
	<project-file>`,
	Short: "cluster populations with a pairwise statistic",
	Long: `
Command cluster reads the table of pairwise statistics of a project, pivots a
statistic into a square matrix, and uses it as a distance to build a
hierarchical clustering of the populations.

The argument of the command is the name of the project file.

By default the Fst estimates will be used. Use the flag --stat to select a
different statistic (for example F2).

The distance between two populations is the mean of the defined estimates of
both orders of the pair. Negative estimates are taken as 0. If a pair of
populations has no estimate in any order, the command fails.

The flag --method defines the linkage used to update the distances after
each join. Valid values are:

	ward      the minimum variance criterion (the default)
	average   the mean distance between members (also "upgma")
	complete  the maximum distance between members
	single    the minimum distance between members

By default, the joins are printed as a tab-delimited table, with the ID of
each cluster, the joined clusters, the height of the join, and the members of
the cluster. Leaves have the IDs from 0 to n-1. Use the flag --newick to print
the dendrogram as a Newick tree.

If the flag --plot is defined, a plot of the dendrogram will be saved in the
indicated file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var statName string
var methodName string
var newick bool
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&statName, "stat", fst.FST, "")
	c.Flags().StringVar(&methodName, "method", string(cluster.Ward), "")
	c.Flags().BoolVar(&newick, "newick", false, "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	method, err := cluster.ParseMethod(methodName)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --method: %v", err))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Stats()
	if err != nil {
		return err
	}

	st := t.Filter(statName)
	if st.Len() == 0 {
		return fmt.Errorf("statistic %q not found in %q", statName, p.Path(project.Stats))
	}
	d, err := buildDendrogram(st, method)
	if err != nil {
		return fmt.Errorf("statistic %q: %v", statName, err)
	}

	if err := writeDendrogram(c.Stdout(), d, newick); err != nil {
		return err
	}

	if plotFile != "" {
		if err := dendrogramPlot(d, plotFile); err != nil {
			return err
		}
	}
	return nil
}

func buildDendrogram(t *fst.Table, method cluster.Method) (*cluster.Dendrogram, error) {
	m, err := fst.Pivot(t)
	if err != nil {
		return nil, err
	}
	dist, err := cluster.Distances(m)
	if err != nil {
		return nil, err
	}
	return cluster.Build(m.Labels(), dist, method)
}

func writeDendrogram(w io.Writer, d *cluster.Dendrogram, newick bool) error {
	if newick {
		if _, err := fmt.Fprintln(w, d.Newick()); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
		return nil
	}
	if err := d.TSV(w); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

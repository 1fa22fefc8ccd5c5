// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package summary implements a command to print
// descriptive statistics of a pairwise statistic.
package summary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/EleniSef/comp-human-adna-book/colorscale"
	"github.com/EleniSef/comp-human-adna-book/fst"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `summary [--stat <name>] [--no-self]
	[--bins <number>] [--hist <file>]
	<project-file>`,
	Short: "print descriptive statistics of a pairwise statistic",
	Long: `
Command summary reads the table of pairwise statistics of a project, and
prints the number of estimates, the mean, the standard deviation, and the
minimum and maximum value of a statistic, followed by a histogram of the
estimates.

The argument of the command is the name of the project file.

By default the Fst estimates will be used. Use the flag --stat to select a
different statistic (for example F2). Statistic names are case insensitive.

All the rows of the statistic are used, including symmetric duplicates and
self-pairs. Use the flag --no-self to remove the rows in which both
populations are the same.

The histogram uses equal-width bins between the minimum and the maximum
estimate. By default 10 bins are used; use the flag --bins to change the
number of bins. If the flag --hist is defined, the histogram will be plotted
into the indicated file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var statName string
var noSelf bool
var numBins int
var histFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&statName, "stat", fst.FST, "")
	c.Flags().BoolVar(&noSelf, "no-self", false, "")
	c.Flags().IntVar(&numBins, "bins", 10, "")
	c.Flags().StringVar(&histFile, "hist", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if numBins < 1 {
		return c.UsageError("flag --bins: invalid number of bins")
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
	values := estimates(st, noSelf)
	if len(values) == 0 {
		return fmt.Errorf("statistic %q: no estimates between different populations", statName)
	}

	bins, err := fst.Histogram(values, numBins)
	if err != nil {
		return err
	}
	if err := report(c.Stdout(), statName, fst.Summarize(values), bins); err != nil {
		return err
	}

	if histFile != "" {
		if err := histPlot(bins, histFile); err != nil {
			return err
		}
	}
	return nil
}

func estimates(t *fst.Table, noSelf bool) []float64 {
	if !noSelf {
		return t.Estimates()
	}
	var v []float64
	for _, r := range t.Rows() {
		if r.A == r.B {
			continue
		}
		v = append(v, r.Estimate)
	}
	return v
}

func report(w io.Writer, name string, s fst.Summary, bins []fst.Bin) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "statistic:  %s\n", strings.ToUpper(name))
	fmt.Fprintf(bw, "estimates:  %d\n", s.N)
	fmt.Fprintf(bw, "mean:       %.6f\n", s.Mean)
	fmt.Fprintf(bw, "std. dev.:  %.6f\n", s.StdDev)
	fmt.Fprintf(bw, "min:        %.6f\n", s.Min)
	fmt.Fprintf(bw, "max:        %.6f\n", s.Max)
	fmt.Fprintf(bw, "\nfrom\tto\tcount\n")
	for _, b := range bins {
		fmt.Fprintf(bw, "%.6f\t%.6f\t%d\n", b.Lo, b.Hi, b.Count)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

func histPlot(bins []fst.Bin, name string) error {
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(bins)),
		Width:     bins[0].Hi - bins[0].Lo,
		FillColor: colorscale.Iridescent{}.Gradient(0.4),
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, b := range bins {
		h.Bins[i] = plotter.HistogramBin{
			Min:    b.Lo,
			Max:    b.Hi,
			Weight: float64(b.Count),
		}
	}

	p := plot.New()
	p.X.Label.Text = strings.ToUpper(statName)
	p.Y.Label.Text = "count"
	p.Add(h)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, name); err != nil {
		return err
	}
	return nil
}

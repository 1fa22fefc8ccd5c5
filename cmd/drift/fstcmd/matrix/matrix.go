// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements a command to pivot
// a pairwise statistic into a square matrix.
package matrix

import (
	"fmt"
	"io"

	"github.com/EleniSef/comp-human-adna-book/cmd/drift/internal/logging"
	"github.com/EleniSef/comp-human-adna-book/colorscale"
	"github.com/EleniSef/comp-human-adna-book/fst"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `matrix [--stat <name>]
	[--plot <file>] [--color <scale>]
	[--log <level>] <project-file>`,
	Short: "print a pairwise statistic as a matrix",
	Long: `
Command matrix reads the table of pairwise statistics of a project and pivots
the estimates of a statistic into a square matrix, with a row and a column for
each population, sorted by name.

The argument of the command is the name of the project file.

By default the Fst estimates will be used. Use the flag --stat to select a
different statistic (for example F2).

The cell at row a and column b is the estimate of the row (a, b) of the table.
No symmetry is assumed, so the cell (b, a) is only defined if the table has a
row for (b, a). Undefined cells are printed as "NA", and a warning with the
number of undefined cells is written on the standard error. If the table has
two different estimates for the same pair of populations, the command fails.

The output is a tab-delimited table written on the standard output.

If the flag --plot is defined, a heat map of the matrix will be saved in the
indicated file, using undefined cells in light gray. The flag --color sets the
color scale of the heat map. Valid values are:

	gray          a gray scale from gray to black
	gray2         a gray scale from light gray to black
	incandescent  the incandescent scale of Paul Tol
	iridescent    the iridescent scale of Paul Tol
	rainbow       the rainbow scale of Paul Tol (the default)
	`,
	SetFlags: setFlags,
	Run:      run,
}

var statName string
var plotFile string
var colorScale string
var logLevel string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&statName, "stat", fst.FST, "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().StringVar(&colorScale, "color", "rainbow", "")
	c.Flags().StringVar(&logLevel, "log", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	gradient, err := colorscale.Parse(colorScale)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --color: %v", err))
	}
	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --log: %v", err))
	}
	logger := logging.New(lvl, c.Stderr())

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
	m, err := fst.Pivot(st)
	if err != nil {
		return fmt.Errorf("statistic %q: %v", statName, err)
	}

	if miss := m.Missing(); len(miss) > 0 {
		logger.Warn("undefined cells", "statistic", statName, "cells", len(miss))
		for _, pair := range miss {
			logger.Debug("undefined cell", "a", pair[0], "b", pair[1])
		}
	}

	if err := writeMatrix(c.Stdout(), m); err != nil {
		return err
	}

	if plotFile != "" {
		if err := heatMap(m, gradient, plotFile); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(w io.Writer, m *fst.Matrix) error {
	if err := m.TSV(w); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

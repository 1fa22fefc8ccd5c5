// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package variance implements a command to report
// the per-generation variance of simulated paths.
package variance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/EleniSef/comp-human-adna-book/drift"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `variance [--paths <file>]
	[--plot <file>] [--traj <file>] [--lines <number>]
	<project-file>`,
	Short: "report the variance of simulated paths",
	Long: `
Command variance reads an ensemble of simulated allele frequency paths and
prints, for each generation, the mean frequency, the sample variance among
replicates (divided by M-1), the expected variance x0(1-x0)(1-(1-1/N)^t), the
mean heterozygosity 2p(1-p), and the number of replicates in which the allele
was lost or fixed.

The argument of the command is the name of the project file. The paths are
read from the "paths" dataset of the project (see 'drift sim'). Use the flag
--paths to read the paths from a different file.

If the ensemble has a single replicate, the variance is undefined and is
reported as "NA".

The output is a tab-delimited table written on the standard output.

If the flag --plot is defined, a plot of the variance by generation, together
with the expected variance and the plateau x0(1-x0), will be saved in the
indicated file. The format of the image is defined by the file extension
(for example .png, .svg, or .pdf).

If the flag --traj is defined, a plot with the frequency paths will be saved
in the indicated file. By default only the first 20 paths are drawn, use the
flag --lines to change this value.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var pathsFile string
var plotFile string
var trajFile string
var numLines int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&pathsFile, "paths", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().StringVar(&trajFile, "traj", "", "")
	c.Flags().IntVar(&numLines, "lines", 20, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if numLines < 1 {
		return c.UsageError("flag --lines: invalid number of lines")
	}

	e, err := readPaths(args[0])
	if err != nil {
		return err
	}

	if err := writeVariance(c.Stdout(), e); err != nil {
		return err
	}

	if plotFile != "" {
		if err := variancePlot(e, plotFile); err != nil {
			return err
		}
	}
	if trajFile != "" {
		if err := trajectoryPlot(e, trajFile, numLines); err != nil {
			return err
		}
	}
	return nil
}

func readPaths(pFile string) (*drift.Ensemble, error) {
	if pathsFile == "" {
		p, err := project.Read(pFile)
		if err != nil {
			return nil, err
		}
		return p.Paths()
	}

	f, err := os.Open(pathsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	e, err := drift.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", pathsFile, err)
	}
	return e, nil
}

var header = "generation\tmean\tvariance\texpected\theterozygosity\tlost\tfixed\n"

func writeVariance(w io.Writer, e *drift.Ensemble) error {
	m := e.Model()
	mean := e.Mean()
	v := e.Variance()
	het := e.Heterozygosity()
	lost, fixed := e.Fixation()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# population size: %d\n", m.Size)
	fmt.Fprintf(bw, "# start frequency: %.6f\n", m.Start)
	fmt.Fprintf(bw, "# replicates: %d\n", e.Len())
	fmt.Fprintf(bw, "# plateau: %.6f\n", m.Start*(1-m.Start))
	fmt.Fprint(bw, header)
	for t := 0; t <= m.Generations; t++ {
		vs := "NA"
		if v != nil {
			vs = strconv.FormatFloat(v[t], 'f', 6, 64)
		}
		fmt.Fprintf(bw, "%d\t%.6f\t%s\t%.6f\t%.6f\t%d\t%d\n", t, mean[t], vs, drift.ExpectedVariance(m, t), het[t], lost[t], fixed[t])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

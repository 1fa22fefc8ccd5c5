// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package params implements a command to manage
// the parameters of a drift simulation.
package params

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/EleniSef/comp-human-adna-book/drift"
	"github.com/EleniSef/comp-human-adna-book/param"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `params [--add <param-file>] [--file <file-name>]
	[--size <value>] [--gens <value>] [--freq <value>]
	[--reps <value>] [--seed <value>]
	<project-file>`,
	Short: "manage drift simulation parameters",
	Long: `
Command params manages the parameters of the Wright-Fisher drift simulation
defined for a project.

The argument of the command is the name of the project file. If no project
exists, a new project will be created.

By default, the command will print the currently defined parameters, as well
as the expected variance at the last generation and the variance plateau
x0(1-x0).

If the flag --add is defined, it will use the indicated file for the
simulation parameters.

By default, any change on the parameters will be stored in the current
parameters file. If the project has no parameters file, or to define a new
parameters file, use the flag --file. If no file is given, it will use
'<project>-params.tab'.

The following flags set the parameters:

	--size   the population size N, at least 1 (default 100).
	--gens   the number of generations of each path (default 100).
	--freq   the starting allele frequency, in [0, 1] (default 0.5).
	--reps   the number of replicated paths (default 100).
	--seed   the seed of the random number generator. If the seed is 0,
	         a random seed will be used in each simulation (default 0).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var size int
var gens int
var freq float64
var reps int
var seed int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().IntVar(&size, "size", 0, "")
	c.Flags().IntVar(&gens, "gens", -1, "")
	c.Flags().Float64Var(&freq, "freq", math.NaN(), "")
	c.Flags().IntVar(&reps, "reps", 0, "")
	c.Flags().IntVar(&seed, "seed", -1, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	if addFile != "" {
		if _, err := param.Read(addFile); err != nil {
			return err
		}
		p.Add(project.Params, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	pm, err := p.Params()
	if err != nil {
		return err
	}
	if paramFile != "" {
		pm.SetName(paramFile)
	}
	if pm.Name() == "" {
		pm.SetName(pFile + "-params.tab")
	}

	ed := false
	if size != 0 {
		if err := pm.SetSize(size); err != nil {
			return err
		}
		ed = true
	}
	if gens >= 0 {
		if err := pm.SetGenerations(gens); err != nil {
			return err
		}
		ed = true
	}
	if !math.IsNaN(freq) {
		if err := pm.SetFrequency(freq); err != nil {
			return err
		}
		ed = true
	}
	if reps != 0 {
		if err := pm.SetReplicates(reps); err != nil {
			return err
		}
		ed = true
	}
	if seed >= 0 {
		pm.SetSeed(uint64(seed))
		ed = true
	}

	if p.Path(project.Params) != pm.Name() {
		if err := pm.Write(); err != nil {
			return err
		}
		p.Add(project.Params, pm.Name())
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}
	if ed {
		if err := pm.Write(); err != nil {
			return err
		}
		return nil
	}

	printParams(c.Stdout(), pm)
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p = project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func printParams(w io.Writer, pm *param.P) {
	m := pm.Model()
	fmt.Fprintf(w, "file:              %s\n", pm.Name())
	fmt.Fprintf(w, "population size:   %d\n", pm.Size())
	fmt.Fprintf(w, "generations:       %d\n", pm.Generations())
	fmt.Fprintf(w, "start frequency:   %.6f\n", pm.Frequency())
	fmt.Fprintf(w, "replicates:        %d\n", pm.Replicates())
	if s := pm.Seed(); s != 0 {
		fmt.Fprintf(w, "seed:              %d\n", s)
	} else {
		fmt.Fprintf(w, "seed:              random\n")
	}
	fmt.Fprintf(w, "expected variance: %.6f\n", drift.ExpectedVariance(m, m.Generations))
	fmt.Fprintf(w, "variance plateau:  %.6f\n", m.Start*(1-m.Start))
}

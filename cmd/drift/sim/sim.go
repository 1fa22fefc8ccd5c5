// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sim implements a command to simulate
// an ensemble of Wright-Fisher drift paths.
package sim

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/EleniSef/comp-human-adna-book/cmd/drift/internal/logging"
	"github.com/EleniSef/comp-human-adna-book/drift"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `sim [--cpu <number>] [-o|--output <file>]
	[--log <level>] <project-file>`,
	Short: "simulate allele frequency paths",
	Long: `
Command sim reads the simulation parameters of a project and simulates an
ensemble of independent Wright-Fisher paths. In each generation, the number
of copies of the allele is drawn from a binomial distribution with N trials
and the frequency of the previous generation as the probability of success.
Frequencies 0 and 1 are absorbing.

The argument of the command is the name of the project file. If the project
has no parameters file, the default parameters will be used (see 'drift help
params').

The flag --output, or -o, defines the name of the file for the simulated
paths. If no name is given, it will use '<project>-paths.tab'. The file will
be added to the project as the "paths" dataset.

If the seed of the parameters is 0, a random seed will be used. The seed is
always stored as a comment in the paths file. Each replicate uses its own
random source derived from the seed, so the result does not depend on the
number of CPUs.

By default, all available CPUs will be used in the simulation. Use the flag
--cpu to change the number of CPUs.

Progress is reported on the standard error. The flag --log sets the level of
the report: "quiet", "info" (the default), or "debug".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numCPU int
var output string
var logLevel string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&logLevel, "log", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if numCPU < 0 {
		return c.UsageError("flag --cpu: invalid number of CPUs")
	}
	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --log: %v", err))
	}
	logger := logging.New(lvl, c.Stderr())

	pFile := args[0]
	p, err := project.Read(pFile)
	if err != nil {
		return err
	}
	pm, err := p.Params()
	if err != nil {
		return err
	}

	seed := pm.Seed()
	if seed == 0 {
		seed = randomSeed()
	}
	if output == "" {
		output = pFile + "-paths.tab"
	}

	m := pm.Model()
	logger.Info("simulation",
		"size", m.Size,
		"generations", m.Generations,
		"frequency", m.Start,
		"replicates", pm.Replicates(),
		"seed", seed,
	)
	start := time.Now()
	e, err := drift.NewEnsemble(m, pm.Replicates(), seed, numCPU)
	if err != nil {
		return err
	}
	lost, fixed := e.Fixation()
	logger.Info("done",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"lost", lost[len(lost)-1],
		"fixed", fixed[len(fixed)-1],
	)

	if err := writePaths(e, seed); err != nil {
		return err
	}
	logger.Debug("paths written", "file", output)

	p.Add(project.Paths, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

// RandomSeed returns a non-zero seed
// from the automatically seeded global source.
func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

func writePaths(ens *drift.Ensemble, seed uint64) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := ens.TSV(f, seed); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

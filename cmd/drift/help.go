// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(paramsFileGuide)
	app.Add(pathsFilesGuide)
	app.Add(projectsGuide)
	app.Add(statsFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Drift commands read and write several files. To reduce the burden of keeping
track of many files, a single project file is used to hold the reference of
all files used in an analysis. This guide explains the structure of the file,
but most of the time, the best way to edit or view this file is by using
drift commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# drift project files
	dataset	path
	params	project.tab-params.tab
	paths	project.tab-paths.tab
	stats	fst-stats.tsv

The valid file types are:

- Simulation parameters. Defined by the dataset keyword "params". This file
  contains the parameters of the drift simulation. The recommended way to
  add or edit the parameters is by using the command 'drift params'.
- Simulated paths. Defined by the dataset keyword "paths". This file
  contains the allele frequencies of an ensemble of simulated paths. It is
  added to the project by the command 'drift sim'.
- Pairwise statistics. Defined by the dataset keyword "stats". This file
  contains a table of pairwise statistics, such as Fst or F2. The
  recommended way to add a statistics file is by using the command
  'drift fst add'.
	`,
}

var paramsFileGuide = &command.Command{
	Usage: "params-file",
	Short: "about the simulation parameters file",
	Long: `
The parameters of a Wright-Fisher drift simulation are stored in a
tab-delimited file with the following fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

Here is an example file:

	# drift simulation parameters
	parameter	value
	size	100
	generations	100
	frequency	0.5
	replicates	100
	seed	42

The valid parameters are:

	size         the population size N (at least 1)
	generations  the number of generations of each path
	frequency    the starting allele frequency x0, in [0, 1]
	replicates   the number of independent paths
	seed         the seed of the random number generator; 0 means a
	             random seed

Parameters not present in the file take their default values (100
individuals, 100 generations, a frequency of 0.5, 100 replicates, and a
random seed).

In a project, the file that contains the parameters is indicated with the
"params" keyword.
	`,
}

var pathsFilesGuide = &command.Command{
	Usage: "paths-files",
	Short: "about files of simulated paths",
	Long: `
The allele frequency paths of a drift simulation are stored in a
tab-delimited file with the following fields:

	- replicate   the ID of the path
	- size        the population size
	- generation  the generation of the frequency
	- frequency   the allele frequency at that generation

Here is an example file:

	# drift simulation paths
	# population size: 10
	# start frequency: 0.500000
	# seed: 42
	replicate	size	generation	frequency
	0	10	0	0.5
	0	10	1	0.6
	0	10	2	0.4
	1	10	0	0.5
	1	10	1	0.3
	1	10	2	0.3

All paths must have the same population size, the same starting frequency,
and a frequency for every generation from 0 to the last generation.

In a project, the file that contains the paths is indicated with the "paths"
keyword.
	`,
}

var statsFilesGuide = &command.Command{
	Usage: "stats-files",
	Short: "about files of pairwise statistics",
	Long: `
A table of pairwise statistics is a tab-delimited file, usually produced by an
external Fst estimator. The first row is the header and must contain the
following fields (case insensitive):

	- Statistic       the name of the statistic (for example FST or F2)
	- a               the first population of the pair
	- b               the second population of the pair
	- Estimate_Total  the point estimate

Optionally, the fields Estimate_Jackknife and SE_Jackknife are read as the
jackknife estimate and its standard error. Any other field is ignored. Empty
values or "NA" in the optional fields are taken as undefined. Rows starting
with '#' are comments.

Here is an example file:

	Statistic	a	b	Estimate_Total	Estimate_Jackknife	SE_Jackknife
	FST	Pop1	Pop1	0.0	0.0	0.0
	FST	Pop1	Pop2	0.02	0.021	0.002
	FST	Pop2	Pop1	0.019	0.019	0.002
	F2	Pop1	Pop2	0.004	0.004	0.0005

The table is used as it is. Each ordered pair is independent, so the
estimate of (Pop1, Pop2) is not used for (Pop2, Pop1). Self-pairs and
symmetric duplicates are kept.

In a project, the file that contains the statistics table is indicated with
the "stats" keyword.
	`,
}

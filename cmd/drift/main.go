// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Drift is a tool to simulate genetic drift
// and to analyze tables of pairwise Fst statistics.
package main

import (
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/fstcmd"
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/params"
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/sim"
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/variance"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "drift <command> [<argument>...]",
	Short: "a tool for genetic drift simulation and Fst analysis",
}

func init() {
	app.Add(params.Command)
	app.Add(sim.Command)
	app.Add(variance.Command)
	app.Add(fstcmd.Command)
}

func main() {
	app.Main()
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fstcmd is a metapackage for commands
// that dealt with tables of pairwise Fst statistics.
package fstcmd

import (
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/fstcmd/add"
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/fstcmd/clustercmd"
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/fstcmd/matrix"
	"github.com/EleniSef/comp-human-adna-book/cmd/drift/fstcmd/summary"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "fst <command> [<argument>...]",
	Short: "commands for pairwise Fst tables",
}

func init() {
	Command.Add(add.Command)
	Command.Add(clustercmd.Command)
	Command.Add(matrix.Command)
	Command.Add(summary.Command)
}

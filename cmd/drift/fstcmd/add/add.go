// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a table of pairwise statistics to a project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EleniSef/comp-human-adna-book/fst"
	"github.com/EleniSef/comp-human-adna-book/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "add <project-file> <stats-file>",
	Short: "add a table of pairwise statistics",
	Long: `
Command add validates a tab-delimited table of pairwise statistics (for
example, the output of an external Fst estimator) and adds its path to a
project.

The first argument of the command is the name of the project file. If no
project exists, a new project will be created.

The second argument is the path of the statistics file. If there is a
statistics file already defined in the project, its path will be replaced by
the new file. See 'drift help stats-files' for the format of the file.

After adding the file, the command prints the statistics found in the table,
with the number of rows and populations of each one.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting statistics file")
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	t, err := readTable(args[1])
	if err != nil {
		return err
	}

	p.Add(project.Stats, args[1])
	if err := p.Write(); err != nil {
		return err
	}

	report(c.Stdout(), t)
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

func readTable(name string) (*fst.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := fst.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

func report(w io.Writer, t *fst.Table) {
	fmt.Fprintf(w, "statistic\trows\tpopulations\tjackknife\n")
	for _, s := range t.Statistics() {
		st := t.Filter(s)
		jk := "no"
		if st.HasJackknife() {
			jk = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s, st.Len(), strings.Join(st.Populations(), ","), jk)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/EleniSef/comp-human-adna-book/drift"
	"github.com/EleniSef/comp-human-adna-book/fst"
	"github.com/EleniSef/comp-human-adna-book/param"
)

// Params reads the simulation parameters
// as defined in a project.
// If no parameter file is defined,
// it returns the default parameters.
func (p *Project) Params() (*param.P, error) {
	name := p.Path(Params)
	if name == "" {
		return param.New(""), nil
	}

	pm, err := param.Read(name)
	if err != nil {
		return nil, err
	}
	return pm, nil
}

// Paths reads the simulated allele frequency paths
// as defined in a project.
func (p *Project) Paths() (*drift.Ensemble, error) {
	name := p.Path(Paths)
	if name == "" {
		return nil, fmt.Errorf("paths not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	e, err := drift.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return e, nil
}

// Stats reads the pairwise statistics table
// as defined in a project.
func (p *Project) Stats() (*fst.Table, error) {
	name := p.Path(Stats)
	if name == "" {
		return nil, fmt.Errorf("statistics table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := fst.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return t, nil
}

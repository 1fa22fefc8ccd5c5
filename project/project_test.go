// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/drift"
	"github.com/EleniSef/comp-human-adna-book/param"
	"github.com/EleniSef/comp-human-adna-book/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Params, "params.tab"},
		{project.Paths, "paths.tab"},
		{project.Stats, "fst-stats.tsv"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Stats, "other-stats.tsv"); prev != "fst-stats.tsv" {
		t.Errorf("replace stats: got previous %q, want %q", prev, "fst-stats.tsv")
	}
	if got := np.Path(project.Stats); got != "other-stats.tsv" {
		t.Errorf("replace stats: got path %q, want %q", got, "other-stats.tsv")
	}
}

func TestReadUnknownDataset(t *testing.T) {
	name := filepath.Join(t.TempDir(), "project.tab")
	blob := "dataset\tpath\ntrees\ttrees.tab\n"
	if err := os.WriteFile(name, []byte(blob), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	if _, err := project.Read(name); err == nil {
		t.Errorf("unknown dataset: expecting error")
	}
}

func TestLoaders(t *testing.T) {
	dir := t.TempDir()

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))

	pm, err := p.Params()
	if err != nil {
		t.Fatalf("default params: %v", err)
	}
	if pm.Size() != param.DefaultSize {
		t.Errorf("default size: got %d, want %d", pm.Size(), param.DefaultSize)
	}

	if _, err := p.Paths(); err == nil {
		t.Errorf("paths: expecting error for undefined dataset")
	}
	if _, err := p.Stats(); err == nil {
		t.Errorf("stats: expecting error for undefined dataset")
	}

	pn := filepath.Join(dir, "params.tab")
	pm = param.New(pn)
	pm.SetSize(10)
	pm.SetGenerations(5)
	pm.SetReplicates(4)
	pm.SetSeed(7)
	if err := pm.Write(); err != nil {
		t.Fatalf("write params: %v", err)
	}
	p.Add(project.Params, pn)

	pm, err = p.Params()
	if err != nil {
		t.Fatalf("read params: %v", err)
	}
	e, err := drift.NewEnsemble(pm.Model(), pm.Replicates(), pm.Seed(), 1)
	if err != nil {
		t.Fatalf("ensemble: %v", err)
	}

	sn := filepath.Join(dir, "paths.tab")
	f, err := os.Create(sn)
	if err != nil {
		t.Fatalf("create paths: %v", err)
	}
	if err := e.TSV(f, pm.Seed()); err != nil {
		t.Fatalf("write paths: %v", err)
	}
	f.Close()
	p.Add(project.Paths, sn)

	ne, err := p.Paths()
	if err != nil {
		t.Fatalf("read paths: %v", err)
	}
	if ne.Len() != 4 {
		t.Errorf("paths: got %d replicates, want %d", ne.Len(), 4)
	}
	if ne.Model() != pm.Model() {
		t.Errorf("paths model: got %v, want %v", ne.Model(), pm.Model())
	}

	tn := filepath.Join(dir, "stats.tsv")
	blob := "Statistic\ta\tb\tEstimate_Total\nFST\tPop1\tPop2\t0.02\n"
	if err := os.WriteFile(tn, []byte(blob), 0o644); err != nil {
		t.Fatalf("write stats: %v", err)
	}
	p.Add(project.Stats, tn)

	tab, err := p.Stats()
	if err != nil {
		t.Fatalf("read stats: %v", err)
	}
	if tab.Len() != 1 {
		t.Errorf("stats: got %d rows, want %d", tab.Len(), 1)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sim

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/EleniSef/comp-human-adna-book/param"
	"github.com/EleniSef/comp-human-adna-book/project"
)

func TestRunRandomSeed(t *testing.T) {
	dir := t.TempDir()
	pFile := newProject(t, dir, 0)

	first := runSim(t, pFile, filepath.Join(dir, "first-paths.tab"))
	second := runSim(t, pFile, filepath.Join(dir, "second-paths.tab"))
	if first == 0 || second == 0 {
		t.Fatalf("seed: got %d and %d, want non-zero seeds", first, second)
	}
	if first == second {
		t.Errorf("seed: two runs with a random seed got the same seed %d", first)
	}

	p, err := project.Read(pFile)
	if err != nil {
		t.Fatalf("read project: %v", err)
	}
	if got, want := p.Path(project.Paths), filepath.Join(dir, "second-paths.tab"); got != want {
		t.Errorf("paths dataset: got %q, want %q", got, want)
	}
	e, err := p.Paths()
	if err != nil {
		t.Fatalf("read paths: %v", err)
	}
	if e.Len() != 5 {
		t.Errorf("replicates: got %d, want %d", e.Len(), 5)
	}
}

func TestRunFixedSeed(t *testing.T) {
	dir := t.TempDir()
	pFile := newProject(t, dir, 42)

	if seed := runSim(t, pFile, filepath.Join(dir, "paths.tab")); seed != 42 {
		t.Errorf("seed: got %d, want %d", seed, 42)
	}
}

func newProject(t testing.TB, dir string, seed uint64) string {
	t.Helper()

	pm := param.New(filepath.Join(dir, "params.tab"))
	pm.SetSize(10)
	pm.SetGenerations(5)
	pm.SetReplicates(5)
	pm.SetSeed(seed)
	if err := pm.Write(); err != nil {
		t.Fatalf("write params: %v", err)
	}

	p := project.New()
	pFile := filepath.Join(dir, "project.tab")
	p.SetName(pFile)
	p.Add(project.Params, pm.Name())
	if err := p.Write(); err != nil {
		t.Fatalf("write project: %v", err)
	}
	return pFile
}

// runSim runs the command
// and returns the seed recorded in the output file.
func runSim(t testing.TB, pFile, out string) uint64 {
	t.Helper()

	numCPU = 1
	output = out
	logLevel = "quiet"
	if err := run(Command, []string{pFile}); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open paths: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		v, ok := strings.CutPrefix(sc.Text(), "# seed: ")
		if !ok {
			continue
		}
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			t.Fatalf("seed comment %q: %v", v, err)
		}
		return seed
	}
	t.Fatalf("paths file %q without seed", out)
	return 0
}

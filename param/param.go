// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements reading and writing
// of the parameters of a drift simulation.
package param

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/EleniSef/comp-human-adna-book/drift"
)

// Param is a keyword to identify
// the type of parameter in a parameter file.
type Param string

// Valid parameters.
const (
	// Frequency is the starting allele frequency.
	Frequency Param = "frequency"

	// Generations is the number of generations
	// of each simulated path.
	Generations Param = "generations"

	// Replicates is the number of independent paths
	// of an ensemble.
	Replicates Param = "replicates"

	// Seed is the seed of the random number generator.
	// A seed of 0 means a random seed.
	Seed Param = "seed"

	// Size is the population size.
	Size Param = "size"
)

// Default values of the parameters.
const (
	DefaultSize        = 100
	DefaultGenerations = 100
	DefaultFrequency   = 0.5
	DefaultReplicates  = 100
)

// P is a collection of simulation parameters.
type P struct {
	name string // file name

	size int
	gens int
	freq float64
	reps int
	seed uint64
}

// New creates a new parameter collection
// with default values.
func New(name string) *P {
	return &P{
		name: name,
		size: DefaultSize,
		gens: DefaultGenerations,
		freq: DefaultFrequency,
		reps: DefaultReplicates,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameter file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Parameters not present in the file
// keep their default value.
// Here is an example file:
//
//	# drift simulation parameters
//	parameter	value
//	size	100
//	generations	100
//	frequency	0.5
//	replicates	100
//	seed	42
func Read(name string) (*P, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*P, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New("")
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		k := Param(strings.ToLower(strings.TrimSpace(row[fields[f]])))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		if err := p.set(k, v); err != nil {
			return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}
	}
	return p, nil
}

func (p *P) set(k Param, v string) error {
	switch k {
	case Frequency:
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		return p.SetFrequency(x)
	case Generations:
		g, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		return p.SetGenerations(g)
	case Replicates:
		m, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		return p.SetReplicates(m)
	case Seed:
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		p.SetSeed(s)
	case Size:
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		return p.SetSize(n)
	default:
		return fmt.Errorf("unknown parameter %q", k)
	}
	return nil
}

// Frequency returns the starting allele frequency.
func (p *P) Frequency() float64 {
	return p.freq
}

// Generations returns the number of generations.
func (p *P) Generations() int {
	return p.gens
}

// Model returns the drift model
// defined by the parameters.
func (p *P) Model() drift.Model {
	return drift.Model{
		Size:        p.size,
		Generations: p.gens,
		Start:       p.freq,
	}
}

// Name returns the file name of the parameters.
func (p *P) Name() string {
	return p.name
}

// Replicates returns the number of replicates.
func (p *P) Replicates() int {
	return p.reps
}

// Seed returns the seed of the random number generator.
func (p *P) Seed() uint64 {
	return p.seed
}

// Size returns the population size.
func (p *P) Size() int {
	return p.size
}

// SetFrequency sets the starting allele frequency.
func (p *P) SetFrequency(x float64) error {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return fmt.Errorf("invalid frequency: %v", x)
	}
	p.freq = x
	return nil
}

// SetGenerations sets the number of generations.
func (p *P) SetGenerations(g int) error {
	if g < 0 {
		return fmt.Errorf("invalid number of generations: %d", g)
	}
	p.gens = g
	return nil
}

// SetName sets the file name of the parameters.
func (p *P) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.name = name
}

// SetReplicates sets the number of replicates.
func (p *P) SetReplicates(m int) error {
	if m < 1 {
		return fmt.Errorf("invalid number of replicates: %d", m)
	}
	p.reps = m
	return nil
}

// SetSeed sets the seed of the random number generator.
func (p *P) SetSeed(s uint64) {
	p.seed = s
}

// SetSize sets the population size.
func (p *P) SetSize(n int) error {
	if n < 1 {
		return fmt.Errorf("invalid population size: %d", n)
	}
	p.size = n
	return nil
}

// Write writes a parameter collection into a file.
func (p *P) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *P) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# drift simulation parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	rows := [][]string{
		{string(Size), strconv.Itoa(p.size)},
		{string(Generations), strconv.Itoa(p.gens)},
		{string(Frequency), strconv.FormatFloat(p.freq, 'f', -1, 64)},
		{string(Replicates), strconv.Itoa(p.reps)},
		{string(Seed), strconv.FormatUint(p.seed, 10)},
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

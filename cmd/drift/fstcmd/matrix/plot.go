// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/EleniSef/comp-human-adna-book/colorscale"
	"github.com/EleniSef/comp-human-adna-book/fst"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A grid is a plotter.GridXYZ
// of a pairwise matrix.
// The first population is drawn at the top.
type grid struct {
	m *fst.Matrix
}

// Dims implements the plotter.GridXYZ interface.
func (g grid) Dims() (c, r int) {
	return g.m.Len(), g.m.Len()
}

// Z implements the plotter.GridXYZ interface.
// Undefined cells are NaN.
func (g grid) Z(c, r int) float64 {
	v, ok := g.m.Value(g.m.Len()-1-r, c)
	if !ok {
		return math.NaN()
	}
	return v
}

// X implements the plotter.GridXYZ interface.
func (g grid) X(c int) float64 {
	return float64(c)
}

// Y implements the plotter.GridXYZ interface.
func (g grid) Y(r int) float64 {
	return float64(r)
}

var missingColor = color.RGBA{211, 211, 211, 255}

func heatMap(m *fst.Matrix, gradient colorscale.Gradienter, name string) error {
	g := grid{m: m}
	hm := plotter.NewHeatMap(g, colorscale.NewPalette(gradient, 255))
	if hm.Min > hm.Max {
		return fmt.Errorf("heat map: matrix without defined values")
	}
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	hm.NaN = missingColor
	hm.Underflow = missingColor
	hm.Overflow = missingColor

	labels := m.Labels()
	xt := make(plot.ConstantTicks, len(labels))
	yt := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		xt[i] = plot.Tick{Value: float64(i), Label: l}
		yt[i] = plot.Tick{Value: float64(len(labels) - 1 - i), Label: l}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s [%.4f, %.4f]", strings.ToUpper(statName), hm.Min, hm.Max)
	p.X.Tick.Marker = xt
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -1
	p.Y.Tick.Marker = yt
	p.Add(hm)

	side := vg.Length(len(labels))*vg.Centimeter/2 + 4*vg.Centimeter
	if err := p.Save(side, side, name); err != nil {
		return err
	}
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package variance

import (
	"fmt"
	"image/color"
	"math"

	"github.com/EleniSef/comp-human-adna-book/colorscale"
	"github.com/EleniSef/comp-human-adna-book/drift"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func variancePlot(e *drift.Ensemble, name string) error {
	v := e.Variance()
	if v == nil {
		return fmt.Errorf("variance plot: at least two replicates are required")
	}
	m := e.Model()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("N = %d, x0 = %.3f, %d replicates", m.Size, m.Start, e.Len())
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "variance"
	p.Y.Min = 0

	pts := make(plotter.XYs, len(v))
	for t, x := range v {
		pts[t].X = float64(t)
		pts[t].Y = x
	}
	obs, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("variance plot: %v", err)
	}
	obs.LineStyle.Width = vg.Points(1.5)
	obs.LineStyle.Color = colorscale.Iridescent{}.Gradient(0.9)

	want := plotter.NewFunction(func(x float64) float64 {
		return drift.ExpectedVariance(m, int(math.Round(x)))
	})
	want.XMin = 0
	want.XMax = float64(m.Generations)
	want.Samples = max(m.Generations+1, 2)
	want.LineStyle.Color = color.Gray{Y: 80}

	plateau := m.Start * (1 - m.Start)
	top := plotter.NewFunction(func(float64) float64 { return plateau })
	top.XMin = 0
	top.XMax = float64(m.Generations)
	top.LineStyle.Color = color.Gray{Y: 120}
	top.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(obs, want, top)
	p.Legend.Add("observed", obs)
	p.Legend.Add("expected", want)
	p.Legend.Add("x0(1-x0)", top)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}

func trajectoryPlot(e *drift.Ensemble, name string, lines int) error {
	m := e.Model()
	if lines > e.Len() {
		lines = e.Len()
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("N = %d, x0 = %.3f", m.Size, m.Start)
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "allele frequency"
	p.Y.Min = 0
	p.Y.Max = 1

	var grad colorscale.Gradienter = colorscale.RainbowPurpleToRed{}
	for i := 0; i < lines; i++ {
		path := e.Path(i)
		pts := make(plotter.XYs, len(path))
		for t, x := range path {
			pts[t].X = float64(t)
			pts[t].Y = x
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("trajectory plot: replicate %d: %v", i, err)
		}
		c := 0.5
		if lines > 1 {
			c = float64(i) / float64(lines-1)
		}
		l.LineStyle.Color = grad.Gradient(c)
		l.LineStyle.Width = vg.Points(0.75)
		p.Add(l)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}

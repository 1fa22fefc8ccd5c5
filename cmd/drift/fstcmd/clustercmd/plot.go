// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clustercmd

import (
	"fmt"

	"github.com/EleniSef/comp-human-adna-book/cluster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A dendroPlot is a plot of a dendrogram
// with the leaves on the Y axis
// and the join heights on the X axis.
type dendroPlot struct {
	d     *cluster.Dendrogram
	pos   map[int]float64 // vertical position of each cluster
	style draw.LineStyle
}

func newDendroPlot(d *cluster.Dendrogram) *dendroPlot {
	dp := &dendroPlot{
		d:     d,
		pos:   make(map[int]float64),
		style: plotter.DefaultLineStyle,
	}
	for i, id := range d.Leaves() {
		dp.pos[id] = float64(i)
	}
	for _, mg := range d.Merges() {
		// children precede the merge
		id := len(dp.pos)
		dp.pos[id] = (dp.pos[mg.Left] + dp.pos[mg.Right]) / 2
	}
	return dp
}

// DataRange implements the plot.DataRanger interface.
func (dp *dendroPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	xMax = dp.d.Height(dp.d.Root())
	if xMax == 0 {
		xMax = 1
	}
	return 0, xMax, -0.5, float64(len(dp.d.Labels())) - 0.5
}

// Plot implements the plot.Plotter interface.
func (dp *dendroPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.SetLineStyle(dp.style)

	n := len(dp.d.Labels())
	for i := range dp.d.Merges() {
		id := n + i
		h := trX(dp.d.Height(id))
		left, right := dp.d.Children(id)

		var p vg.Path
		p.Move(vg.Point{X: trX(dp.d.Height(left)), Y: trY(dp.pos[left])})
		p.Line(vg.Point{X: h, Y: trY(dp.pos[left])})
		p.Line(vg.Point{X: h, Y: trY(dp.pos[right])})
		p.Line(vg.Point{X: trX(dp.d.Height(right)), Y: trY(dp.pos[right])})
		c.Stroke(p)
	}
}

func dendrogramPlot(d *cluster.Dendrogram, name string) error {
	labels := d.Labels()
	ticks := make(plot.ConstantTicks, 0, len(labels))
	for i, id := range d.Leaves() {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: labels[id]})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s linkage", d.Method())
	p.X.Label.Text = "height"
	p.Y.Tick.Marker = ticks
	p.Add(newDendroPlot(d))

	height := vg.Length(len(labels))*vg.Centimeter/2 + 3*vg.Centimeter
	if err := p.Save(6*vg.Inch, height, name); err != nil {
		return err
	}
	return nil
}

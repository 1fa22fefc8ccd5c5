// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colorscale implements color gradients
// used to paint pairwise matrices
// and other continuous values.
package colorscale

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
	"gonum.org/v1/plot/palette"
)

// Gradienter is an interface for types
// that return a color for a value in [0, 1].
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Default is the gradient used when no scale is given.
var Default Gradienter = RainbowPurpleToRed{}

// Names returns the accepted names of the color scales.
func Names() []string {
	return []string{"gray", "gray2", "incandescent", "iridescent", "rainbow"}
}

// Parse returns the gradient with a given name.
// An empty name returns the default gradient.
func Parse(name string) (Gradienter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Default, nil
	case "gray":
		return HalfGrayScale{}, nil
	case "gray2":
		return LightGrayScale{}, nil
	case "incandescent":
		return Incandescent{}, nil
	case "iridescent":
		return Iridescent{}, nil
	case "rainbow":
		return RainbowPurpleToRed{}, nil
	}
	return nil, fmt.Errorf("unknown color scale %q", name)
}

func clamp(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HalfGrayScale goes from gray (128) for low values
// to black for high values.
type HalfGrayScale struct{}

func (h HalfGrayScale) Gradient(v float64) color.Color {
	c := 128 - uint8(clamp(v)*128)
	return color.RGBA{c, c, c, 255}
}

// LightGrayScale goes from light gray (200) for low values
// to black for high values.
type LightGrayScale struct{}

func (l LightGrayScale) Gradient(v float64) color.Color {
	c := 200 - uint8(clamp(v)*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// Palette is a plot palette
// sampled from a gradient.
type Palette struct {
	colors []color.Color
}

// NewPalette returns a palette with n colors
// evenly sampled from a gradient.
func NewPalette(g Gradienter, n int) *Palette {
	if g == nil {
		g = Default
	}
	if n < 2 {
		n = 2
	}
	p := &Palette{colors: make([]color.Color, n)}
	for i := range p.colors {
		p.colors[i] = g.Gradient(float64(i) / float64(n-1))
	}
	return p
}

// Colors implements the palette.Palette interface.
func (p *Palette) Colors() []color.Color {
	return p.colors
}

var _ palette.Palette = &Palette{}

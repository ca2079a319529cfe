// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"slices"

	"cogentcore.org/gridline/base/errors"
	"github.com/jinzhu/copier"
)

// AreaSpec is the plotting area of a scene, in pixels.
type AreaSpec struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
	W float64 `toml:"w" yaml:"w"`
	H float64 `toml:"h" yaml:"h"`
}

// TickSpec is one tick position of a scene.
type TickSpec struct {

	// Pos is the fractional position along the axis, in [0, 1].
	Pos float64 `toml:"pos" yaml:"pos"`

	// Hidden marks a position that takes part in spacing
	// computations but has no grid line of its own.
	Hidden bool `toml:"hidden,omitempty" yaml:"hidden,omitempty"`

	// Axis is the axis name (y or y2) of a y tick; empty means y.
	Axis string `toml:"axis,omitempty" yaml:"axis,omitempty"`
}

// Scene describes a chart to render: the canvas, the plotting
// area, the tick positions computed by the layout engine, and
// the grid options.
type Scene struct {

	// Width of the rendered image in pixels.
	Width int `toml:"width" yaml:"width"`

	// Height of the rendered image in pixels.
	Height int `toml:"height" yaml:"height"`

	// Background color of the rendered image.
	Background string `toml:"background" yaml:"background"`

	// Area is the plotting area within the image.
	Area AreaSpec `toml:"area" yaml:"area"`

	// XTicks are the x axis tick positions, in increasing order.
	XTicks []TickSpec `toml:"xticks" yaml:"xticks"`

	// YTicks are the y and y2 axis tick positions, in increasing order.
	YTicks []TickSpec `toml:"yticks" yaml:"yticks"`

	// Grid has the grid options.
	Grid Options `toml:"grid" yaml:"grid"`
}

// NewScene returns a new [Scene] with defaults applied.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// Defaults sets the default scene: a 600x400 white image with
// the plotting area inset by 40 pixels, and default options.
func (sc *Scene) Defaults() {
	sc.Width = 600
	sc.Height = 400
	sc.Background = "white"
	sc.Area = AreaSpec{X: 40, Y: 20, W: 540, H: 340}
	sc.Grid.Defaults()
}

// Clone returns a deep copy of the scene.
func (sc *Scene) Clone() *Scene {
	c := &Scene{}
	errors.Log(copier.CopyWithOption(c, sc, copier.Option{DeepCopy: true}))
	return c
}

// Validate returns an error describing every problem in the
// scene that prevents it from being rendered, or nil.
func (sc *Scene) Validate() error {
	var errs []error
	if sc.Width <= 0 || sc.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, not %dx%d", sc.Width, sc.Height))
	}
	for i, tk := range sc.YTicks {
		if tk.Axis != "" && !slices.Contains([]string{AxisY, AxisY2}, tk.Axis) {
			errs = append(errs, fmt.Errorf("yticks[%d]: unknown axis %q", i, tk.Axis))
		}
	}
	if err := sc.Grid.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid draws the grid lines of a chart: one line per axis
// tick for the y, y2 and x axes, and an optional adaptive sub-grid
// of finer lines between the x ticks. Rendering happens into a
// [paint.Painter] on every repaint of the chart, driven by a [Plugin]
// registered with the host.
package grid

import (
	"fmt"
	"math"
)

// Area is the pixel-space rectangle of the plotting region,
// with X, Y the top-left corner.
type Area struct {
	X, Y, W, H float64
}

// Empty returns whether the area has no drawable extent.
// NaN sizes are empty.
func (a Area) Empty() bool {
	return !(a.W > 0) || !(a.H > 0)
}

// YAxis is one of the y axes of a chart.
type YAxis int32

const (
	// Primary is the main y axis, drawn at the left.
	Primary YAxis = iota

	// Secondary is the optional second y axis (y2).
	Secondary
)

// Name returns the option name of the axis: y or y2.
func (ax YAxis) Name() string {
	switch ax {
	case Primary:
		return "y"
	case Secondary:
		return "y2"
	}
	return fmt.Sprintf("YAxis(%d)", int32(ax))
}

func (ax YAxis) String() string {
	return ax.Name()
}

// YAxisFromName returns the [YAxis] with the given option name.
// The empty name is the primary axis.
func YAxisFromName(name string) (YAxis, error) {
	switch name {
	case "", "y":
		return Primary, nil
	case "y2":
		return Secondary, nil
	}
	return Primary, fmt.Errorf("grid: unknown y axis %q", name)
}

// Tick is one candidate grid line position along an axis.
type Tick struct {

	// Pos is the fractional offset of the tick along the axis,
	// in [0, 1] of the area width (x) or height (y). It is not
	// a pixel value.
	Pos float64

	// HasTick is whether a grid line is drawn at Pos. A position
	// without a tick still takes part in spacing computations.
	HasTick bool

	// Axis is the y axis a y tick belongs to. It is ignored for x ticks.
	Axis YAxis
}

// Layout is the read-only view of the chart that the renderer needs
// for one repaint: the plotting area and the tick positions of each
// axis, in increasing order of Pos.
type Layout struct {
	Area   Area
	XTicks []Tick
	YTicks []Tick
}

// Round rounds v to the nearest integer, with halves rounded up
// toward positive infinity.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// HalfUp snaps v to the pixel center above its nearest integer,
// so that a 1px stroke covers a single device pixel column or row.
// It is used for the x of vertical lines and the baseline x of
// horizontal lines.
func HalfUp(v float64) float64 {
	return Round(v) + 0.5
}

// HalfDown snaps v to the pixel center below its nearest integer.
// It is used for the y of horizontal lines and the baseline y of
// vertical lines.
func HalfDown(v float64) float64 {
	return Round(v) - 0.5
}

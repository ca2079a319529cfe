// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"image/color"
	"math"
	"slices"

	"cogentcore.org/gridline/colors"
	"cogentcore.org/gridline/config"
	"cogentcore.org/gridline/paint"
)

// DefaultLineColor is used when a configured grid color cannot be parsed.
var DefaultLineColor color.Color = color.RGBA{128, 128, 128, 255}

// AxisStyle is the resolved grid style of one axis.
type AxisStyle struct {

	// DrawGrid is whether grid lines are drawn for the axis.
	DrawGrid bool

	// StrokeColor is the color of the grid lines.
	StrokeColor color.Color

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// DashPattern is the dash pattern of the lines; fewer than
	// two entries draws solid lines.
	DashPattern []float64
}

// AxisStyleFromOptions resolves the style of an axis from its options.
// An invalid color is logged and replaced with [DefaultLineColor].
func AxisStyleFromOptions(ao config.AxisOptions) AxisStyle {
	st := AxisStyle{DrawGrid: ao.DrawGrid, LineWidth: ao.GridLineWidth}
	if !ao.DrawGrid {
		return st
	}
	st.StrokeColor = colors.LogFromString(ao.GridLineColor, DefaultLineColor)
	if paint.IsDashPattern(ao.GridLinePattern) {
		st.DashPattern = slices.Clone(ao.GridLinePattern)
	}
	return st
}

// apply sets the stroke style on the painter. It returns whether a
// dash pattern was applied.
func (st *AxisStyle) apply(p paint.Painter) bool {
	dashed := paint.SetDash(p, st.DashPattern)
	p.SetStrokeColor(st.StrokeColor)
	p.SetLineWidth(st.LineWidth)
	return dashed
}

// styled calls f with the axis style applied to the painter, within
// a save / restore scope. The dash pattern is cleared before the
// scope ends so that it cannot leak into later drawing.
func (st *AxisStyle) styled(p paint.Painter, f func()) {
	paint.Scoped(p, func() {
		if st.apply(p) {
			defer paint.ClearDash(p)
		}
		f()
	})
}

// Styles holds the resolved grid styles of all axes for one repaint.
type Styles struct {

	// X is the style of the x axis grid.
	X AxisStyle

	// Y is the style of the primary y axis grid.
	Y AxisStyle

	// Y2 is the style of the secondary y axis grid.
	Y2 AxisStyle

	// Detailed is whether the adaptive sub-grid is drawn for the x axis.
	Detailed bool

	// Detail is the style of the adaptive sub-grid.
	Detail DetailStyle
}

// YStyle returns the style of the given y axis, and false if
// the axis is not a known y axis.
func (s *Styles) YStyle(ax YAxis) (AxisStyle, bool) {
	switch ax {
	case Primary:
		return s.Y, true
	case Secondary:
		return s.Y2, true
	}
	return AxisStyle{}, false
}

// DetailStyle has the parameters of the adaptive sub-grid.
type DetailStyle struct {

	// Divisions is the number of intervals each level splits the
	// spacing of the level above into.
	Divisions int

	// MinSpacing is the legibility floor: a level is only drawn
	// when its lines are more than this many pixels apart.
	MinSpacing float64

	// Level1Color is the color of the solid first level.
	Level1Color color.Color

	// Level2Color is the color of the dashed second level.
	Level2Color color.Color

	// Level2Pattern is the dash pattern of the second level.
	Level2Pattern []float64

	// LineWidth is the stroke width of sub-grid lines.
	LineWidth float64
}

// Defaults sets the default sub-grid style.
func (ds *DetailStyle) Defaults() {
	do := config.DetailOptions{}
	do.Defaults()
	*ds = DetailStyleFromOptions(do)
}

// DetailStyleFromOptions resolves the sub-grid style from its options.
func DetailStyleFromOptions(do config.DetailOptions) DetailStyle {
	return DetailStyle{
		Divisions:     max(do.Divisions, 2),
		MinSpacing:    do.MinSpacing,
		Level1Color:   colors.LogFromString(do.Level1Color, color.RGBA{200, 200, 200, 255}),
		Level2Color:   colors.LogFromString(do.Level2Color, color.RGBA{225, 225, 225, 255}),
		Level2Pattern: slices.Clone(do.Level2Pattern),
		LineWidth:     do.LineWidth,
	}
}

// Legible returns whether lines spaced step apart, as a fraction
// of the given width in pixels, are far enough apart to be drawn.
func (ds *DetailStyle) Legible(step, width float64) bool {
	px := step * width
	return px > ds.MinSpacing && !math.IsInf(px, 0)
}

// DetailStylers is a list of styling functions that adjust a
// [DetailStyle] after it has been resolved from options.
// These are called in the order added.
type DetailStylers []func(ds *DetailStyle)

// Add adds a styling function to the list.
func (st *DetailStylers) Add(f func(ds *DetailStyle)) {
	*st = append(*st, f)
}

// Run runs the list of styling functions on the given [DetailStyle].
func (st DetailStylers) Run(ds *DetailStyle) {
	for _, f := range st {
		f(ds)
	}
}

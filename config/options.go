// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the user-facing options of the grid
// renderer and the scene files that describe a chart to render.
package config

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"cogentcore.org/gridline/base/errors"
	"github.com/jinzhu/copier"
)

// Axis names used as keys for per-axis options.
const (
	AxisX  = "x"
	AxisY  = "y"
	AxisY2 = "y2"
)

// AxisNames are the names of all axes, in drawing order.
var AxisNames = []string{AxisY, AxisY2, AxisX}

// AxisOptions are the grid options that apply to one axis.
type AxisOptions struct {

	// DrawGrid is whether to draw grid lines for the axis.
	DrawGrid bool `toml:"drawGrid" yaml:"drawGrid"`

	// GridLineColor is the color of the grid lines, as a
	// hex value, rgb(), rgba() or a CSS color name.
	GridLineColor string `toml:"gridLineColor" yaml:"gridLineColor"`

	// GridLineWidth is the stroke width of grid lines, in pixels.
	GridLineWidth float64 `toml:"gridLineWidth" yaml:"gridLineWidth"`

	// GridLinePattern is the dash pattern of grid lines, as alternating
	// on / off lengths in pixels. Fewer than two entries draws solid lines.
	GridLinePattern []float64 `toml:"gridLinePattern,omitempty" yaml:"gridLinePattern,omitempty"`

	// DetailedGrid turns on the adaptive sub-grid between the ticks.
	// It only has an effect on the x axis.
	DetailedGrid bool `toml:"detailedGrid" yaml:"detailedGrid"`
}

// Defaults sets the default grid options.
func (ao *AxisOptions) Defaults() {
	ao.DrawGrid = true
	ao.GridLineColor = "rgb(128,128,128)"
	ao.GridLineWidth = 0.3
	ao.GridLinePattern = nil
	ao.DetailedGrid = false
}

// AxisOverrides holds per-axis values that take precedence over
// the shared [AxisOptions]. Unset (nil) fields inherit.
type AxisOverrides struct {
	DrawGrid        *bool     `toml:"drawGrid,omitempty" yaml:"drawGrid,omitempty"`
	GridLineColor   *string   `toml:"gridLineColor,omitempty" yaml:"gridLineColor,omitempty"`
	GridLineWidth   *float64  `toml:"gridLineWidth,omitempty" yaml:"gridLineWidth,omitempty"`
	GridLinePattern []float64 `toml:"gridLinePattern,omitempty" yaml:"gridLinePattern,omitempty"`
	DetailedGrid    *bool     `toml:"detailedGrid,omitempty" yaml:"detailedGrid,omitempty"`
}

// apply sets the fields of ao that are set in ov.
func (ov *AxisOverrides) apply(ao *AxisOptions) {
	if ov.DrawGrid != nil {
		ao.DrawGrid = *ov.DrawGrid
	}
	if ov.GridLineColor != nil {
		ao.GridLineColor = *ov.GridLineColor
	}
	if ov.GridLineWidth != nil {
		ao.GridLineWidth = *ov.GridLineWidth
	}
	if ov.GridLinePattern != nil {
		ao.GridLinePattern = slices.Clone(ov.GridLinePattern)
	}
	if ov.DetailedGrid != nil {
		ao.DetailedGrid = *ov.DetailedGrid
	}
}

// DetailOptions are the constants of the adaptive sub-grid.
type DetailOptions struct {

	// Divisions is the number of sub-intervals each level splits
	// the level above into: 5 gives sub-grids at 1/5 and 1/25
	// of the tick spacing.
	Divisions int `toml:"divisions" yaml:"divisions"`

	// MinSpacing is the legibility floor in pixels: a sub-grid level
	// is only drawn when its line spacing is greater than this.
	MinSpacing float64 `toml:"minSpacing" yaml:"minSpacing"`

	// Level1Color is the color of the first, coarser sub-grid level.
	Level1Color string `toml:"level1Color" yaml:"level1Color"`

	// Level2Color is the color of the second, finer sub-grid level.
	Level2Color string `toml:"level2Color" yaml:"level2Color"`

	// Level2Pattern is the dash pattern of the second sub-grid level.
	Level2Pattern []float64 `toml:"level2Pattern" yaml:"level2Pattern"`

	// LineWidth is the stroke width of sub-grid lines, in pixels.
	LineWidth float64 `toml:"lineWidth" yaml:"lineWidth"`
}

// Defaults sets the default sub-grid constants.
func (do *DetailOptions) Defaults() {
	do.Divisions = 5
	do.MinSpacing = 4
	do.Level1Color = "rgb(200,200,200)"
	do.Level2Color = "rgb(225,225,225)"
	do.Level2Pattern = []float64{2, 8}
	do.LineWidth = 1
}

// Options are all of the grid options of a chart: shared axis
// options, per-axis overrides and the sub-grid constants.
type Options struct {

	// Axis has the options shared by all axes.
	Axis AxisOptions `toml:"options" yaml:"options"`

	// Axes has per-axis overrides, keyed by axis name (x, y, y2).
	Axes map[string]AxisOverrides `toml:"axes" yaml:"axes"`

	// Detail has the adaptive sub-grid constants.
	Detail DetailOptions `toml:"detail" yaml:"detail"`
}

// NewOptions returns new [Options] with defaults applied.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults sets the default options. The secondary y axis
// has no grid by default.
func (o *Options) Defaults() {
	o.Axis.Defaults()
	o.Detail.Defaults()
	off := false
	o.Axes = map[string]AxisOverrides{
		AxisY2: {DrawGrid: &off},
	}
}

// SetAxis sets the overrides for the given axis.
func (o *Options) SetAxis(axis string, ov AxisOverrides) *Options {
	if o.Axes == nil {
		o.Axes = map[string]AxisOverrides{}
	}
	o.Axes[axis] = ov
	return o
}

// ForAxis returns the options in effect for the given axis:
// the shared options with the axis overrides applied. The result
// does not share memory with o.
func (o *Options) ForAxis(axis string) AxisOptions {
	var ao AxisOptions
	errors.Log(copier.CopyWithOption(&ao, &o.Axis, copier.Option{DeepCopy: true}))
	if ov, ok := o.Axes[axis]; ok {
		ov.apply(&ao)
	}
	return ao
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	c := &Options{}
	errors.Log(copier.CopyWithOption(c, o, copier.Option{DeepCopy: true}))
	return c
}

// Validate returns an error describing every option value that
// cannot be rendered, or nil.
func (o *Options) Validate() error {
	var errs []error
	check := func(axis string, ao AxisOptions) {
		if ao.GridLineWidth < 0 {
			errs = append(errs, fmt.Errorf("axis %s: negative gridLineWidth %g", axis, ao.GridLineWidth))
		}
		if err := validatePattern(ao.GridLinePattern); err != nil {
			errs = append(errs, fmt.Errorf("axis %s: gridLinePattern: %w", axis, err))
		}
	}
	check("options", o.Axis)
	for _, axis := range slices.Sorted(maps.Keys(o.Axes)) {
		if !slices.Contains(AxisNames, axis) {
			errs = append(errs, fmt.Errorf("unknown axis %q", axis))
			continue
		}
		check(axis, o.ForAxis(axis))
	}
	d := &o.Detail
	if d.Divisions < 2 {
		errs = append(errs, fmt.Errorf("detail: divisions must be at least 2, not %d", d.Divisions))
	}
	if d.MinSpacing < 0 {
		errs = append(errs, fmt.Errorf("detail: negative minSpacing %g", d.MinSpacing))
	}
	if d.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("detail: negative lineWidth %g", d.LineWidth))
	}
	if err := validatePattern(d.Level2Pattern); err != nil {
		errs = append(errs, fmt.Errorf("detail: level2Pattern: %w", err))
	}
	return errors.Join(errs...)
}

func validatePattern(pat []float64) error {
	if len(pat) < 2 {
		return nil
	}
	sum := 0.0
	for _, v := range pat {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return fmt.Errorf("length %g is not finite", v)
		case v < 0:
			return fmt.Errorf("negative length %g", v)
		}
		sum += v
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return fmt.Errorf("total length %g must be positive and finite", sum)
	}
	return nil
}

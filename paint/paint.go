// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the immediate-mode 2D drawing surface that
// chart overlays render into, along with helpers for scoping its
// style state and an in-memory [Recorder] implementation.
package paint

import (
	"image/color"
	"math"
)

// Painter is an immediate-mode 2D drawing surface, modeled on the HTML
// canvas 2D context. Coordinates are in pixels with the origin at the
// top-left. Style state (stroke color, line width and, for a [Dasher],
// the dash pattern) is saved and restored as a unit by Save and Restore;
// the current path is not part of the saved state.
type Painter interface {
	// Save pushes the current style state onto the state stack.
	Save()

	// Restore pops the most recently saved style state.
	Restore()

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)

	// LineTo adds a straight segment from the current point to the given point.
	LineTo(x, y float64)

	// Stroke strokes the current path with the current style.
	// The path is retained until the next BeginPath.
	Stroke()

	// SetStrokeColor sets the color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)
}

// Dasher is implemented by a [Painter] that supports dashed strokes.
type Dasher interface {
	// SetLineDash sets the alternating on / off lengths used by Stroke.
	// An empty pattern means solid lines.
	SetLineDash(pattern []float64)
}

// IsDashPattern returns whether the given pattern describes a dashed
// line: it needs at least two entries, all finite and non-negative,
// with a positive total length. Any other pattern is drawn solid.
func IsDashPattern(pattern []float64) bool {
	if len(pattern) < 2 {
		return false
	}
	sum := 0.0
	for _, v := range pattern {
		if !(v >= 0) || math.IsInf(v, 0) {
			return false
		}
		sum += v
	}
	return sum > 0 && !math.IsInf(sum, 0)
}

// SetDash sets the dash pattern on the given painter if it supports
// dashing and the pattern is a real dash pattern. It returns whether
// the pattern was applied; when it was not, strokes stay solid.
func SetDash(p Painter, pattern []float64) bool {
	if !IsDashPattern(pattern) {
		return false
	}
	d, ok := p.(Dasher)
	if !ok {
		return false
	}
	d.SetLineDash(pattern)
	return true
}

// ClearDash resets the dash pattern to solid lines, if the
// painter supports dashing.
func ClearDash(p Painter) {
	if d, ok := p.(Dasher); ok {
		d.SetLineDash(nil)
	}
}

// Scoped calls f between p.Save and p.Restore. The restore happens on
// every exit path of f, including a panic.
func Scoped(p Painter, f func()) {
	p.Save()
	defer p.Restore()
	f()
}

// Line adds a single line segment subpath to the current path.
func Line(p Painter, x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"log/slog"
	"slices"
)

// Style is the style state of a [Recorder] that is
// saved and restored by Save and Restore.
type Style struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the stroke width in pixels.
	Width float64

	// Dash is the current dash pattern; empty means solid.
	Dash []float64
}

// Segment is a straight line segment in pixel coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Vertical returns whether the segment is a vertical line.
func (s Segment) Vertical() bool {
	return s.X0 == s.X1 && s.Y0 != s.Y1
}

// Horizontal returns whether the segment is a horizontal line.
func (s Segment) Horizontal() bool {
	return s.Y0 == s.Y1 && s.X0 != s.X1
}

// Item is one stroke recorded by a [Recorder]: the segments of
// the path at the time of the stroke, with the style used.
type Item struct {
	Segments []Segment
	Style    Style
}

// Render is the ordered list of strokes recorded by a [Recorder].
type Render []Item

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Segments returns all of the segments of all items, in drawing order.
func (r Render) Segments() []Segment {
	var segs []Segment
	for _, it := range r {
		segs = append(segs, it.Segments...)
	}
	return segs
}

// Recorder is a [Painter] and [Dasher] that records every stroke
// in memory instead of rasterizing it. It is used for testing
// and for inspecting the geometry produced by a rendering pass.
type Recorder struct {
	// Render is the list of recorded strokes.
	Render Render

	// Style is the current style state.
	Style Style

	// stack holds the saved style states.
	stack []Style

	// path is the current path, as a list of subpaths.
	path [][]point
}

type point struct {
	x, y float64
}

// NewRecorder returns a new [Recorder] with a solid black 1px stroke.
func NewRecorder() *Recorder {
	return &Recorder{Style: Style{Color: color.Black, Width: 1}}
}

// Depth returns the number of saved style states.
func (rc *Recorder) Depth() int {
	return len(rc.stack)
}

// Reset clears the recorded strokes, the path and the state stack,
// keeping the current style.
func (rc *Recorder) Reset() {
	rc.Render.Reset()
	rc.stack = rc.stack[:0]
	rc.path = nil
}

func (rc *Recorder) Save() {
	st := rc.Style
	st.Dash = slices.Clone(st.Dash)
	rc.stack = append(rc.stack, st)
}

func (rc *Recorder) Restore() {
	n := len(rc.stack)
	if n == 0 {
		slog.Error("programmer error: paint.Recorder.Restore: no saved state")
		return
	}
	rc.Style = rc.stack[n-1]
	rc.stack = rc.stack[:n-1]
}

func (rc *Recorder) BeginPath() {
	rc.path = nil
}

func (rc *Recorder) MoveTo(x, y float64) {
	rc.path = append(rc.path, []point{{x, y}})
}

func (rc *Recorder) LineTo(x, y float64) {
	n := len(rc.path)
	if n == 0 {
		rc.MoveTo(x, y)
		return
	}
	rc.path[n-1] = append(rc.path[n-1], point{x, y})
}

func (rc *Recorder) Stroke() {
	var segs []Segment
	for _, sp := range rc.path {
		for i := 1; i < len(sp); i++ {
			segs = append(segs, Segment{sp[i-1].x, sp[i-1].y, sp[i].x, sp[i].y})
		}
	}
	if len(segs) == 0 {
		return
	}
	st := rc.Style
	st.Dash = slices.Clone(st.Dash)
	rc.Render.Add(Item{Segments: segs, Style: st})
}

func (rc *Recorder) SetStrokeColor(c color.Color) {
	rc.Style.Color = c
}

func (rc *Recorder) SetLineWidth(w float64) {
	rc.Style.Width = w
}

func (rc *Recorder) SetLineDash(pattern []float64) {
	rc.Style.Dash = slices.Clone(pattern)
}

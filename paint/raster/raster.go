// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [paint.Painter] that rasterizes
// into an [image.RGBA], using the gg 2D rendering library.
package raster

import (
	"image"
	"image/color"
	"io"

	"cogentcore.org/gridline/paint"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/fogleman/gg"
)

// Painter is a [paint.Painter] and [paint.Dasher] drawing
// into an image through a [gg.Context].
type Painter struct {
	dc *gg.Context
}

// New returns a new [Painter] drawing into a new
// transparent image of the given size.
func New(width, height int) *Painter {
	return &Painter{dc: gg.NewContext(width, height)}
}

// Size returns the size of the image in pixels.
func (pt *Painter) Size() image.Point {
	return image.Pt(pt.dc.Width(), pt.dc.Height())
}

// Fill fills the entire image with the given color, without
// changing the current stroke style.
func (pt *Painter) Fill(c color.Color) {
	pt.dc.Push()
	pt.dc.SetColor(c)
	pt.dc.Clear()
	pt.dc.Pop()
}

// Image returns a copy of the current image.
func (pt *Painter) Image() *image.RGBA {
	return clone.AsRGBA(pt.dc.Image())
}

// EncodePNG writes the current image to w in PNG format.
func (pt *Painter) EncodePNG(w io.Writer) error {
	return pt.dc.EncodePNG(w)
}

// SavePNG saves the current image to the given file in PNG format.
func (pt *Painter) SavePNG(filename string) error {
	return imgio.Save(filename, pt.dc.Image(), imgio.PNGEncoder())
}

func (pt *Painter) Save() {
	pt.dc.Push()
}

func (pt *Painter) Restore() {
	pt.dc.Pop()
}

func (pt *Painter) BeginPath() {
	pt.dc.ClearPath()
}

func (pt *Painter) MoveTo(x, y float64) {
	pt.dc.MoveTo(x, y)
}

func (pt *Painter) LineTo(x, y float64) {
	pt.dc.LineTo(x, y)
}

func (pt *Painter) Stroke() {
	pt.dc.StrokePreserve()
}

func (pt *Painter) SetStrokeColor(c color.Color) {
	pt.dc.SetStrokeStyle(gg.NewSolidPattern(c))
}

func (pt *Painter) SetLineWidth(w float64) {
	pt.dc.SetLineWidth(w)
}

// SetLineDash sets the dash pattern of subsequent strokes. A pattern
// that is not a valid dash pattern, such as one of zero total length,
// draws solid lines.
func (pt *Painter) SetLineDash(pattern []float64) {
	if !paint.IsDashPattern(pattern) {
		pt.dc.SetDash()
		return
	}
	pt.dc.SetDash(pattern...)
}

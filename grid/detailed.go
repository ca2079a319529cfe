// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"cogentcore.org/gridline/paint"
)

// maxIndex bounds the sub-grid line indices so that out-of-range
// tick positions cannot overflow the index arithmetic.
const maxIndex = 1 << 30

// DrawDetailedGrid draws the adaptive sub-grid between the x ticks.
//
// The spacing of the first two ticks (or the full width if there are
// fewer than two) is divided into ds.Divisions intervals for the solid
// first level, and each of those again into ds.Divisions intervals for
// the dashed second level. Each level is only drawn while its lines are
// more than ds.MinSpacing pixels apart, and skips the positions already
// covered by the level above. Both levels extend from the first tick
// back to the left edge and forward to the right edge of the area. The
// first level also draws horizontal lines at the same pixel spacing
// from the top to the bottom of the area.
func DrawDetailedGrid(p paint.Painter, area Area, ticks []Tick, ds DetailStyle) {
	if area.Empty() {
		return
	}
	if len(ticks) == 0 {
		ticks = []Tick{{Pos: 0}}
	}
	delta := 1.0
	if len(ticks) > 1 {
		delta = ticks[1].Pos - ticks[0].Pos
	}
	n := max(ds.Divisions, 2)
	origin := ticks[0].Pos

	step1 := delta / float64(n)
	if !ds.Legible(step1, area.W) {
		return
	}
	paint.Scoped(p, func() {
		p.SetStrokeColor(ds.Level1Color)
		p.SetLineWidth(ds.LineWidth)
		p.BeginPath()
		fillHorizontal(p, area, step1*area.W)
		subdivide(p, area, origin, step1, n)
		p.Stroke()
	})

	step2 := step1 / float64(n)
	if !ds.Legible(step2, area.W) {
		return
	}
	paint.Scoped(p, func() {
		if paint.SetDash(p, ds.Level2Pattern) {
			defer paint.ClearDash(p)
		}
		p.SetStrokeColor(ds.Level2Color)
		p.SetLineWidth(ds.LineWidth)
		p.BeginPath()
		subdivide(p, area, origin, step2, n)
		p.Stroke()
	})
}

// subdivide adds the vertical lines at origin + i*step that fall within
// the area, for every i that is not a multiple of n.
func subdivide(p paint.Painter, area Area, origin, step float64, n int) {
	lo := math.Ceil(-origin / step)
	hi := math.Floor((1 - origin) / step)
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < -maxIndex || hi > maxIndex {
		return
	}
	y0 := HalfDown(area.Y + area.H)
	for i := int(lo); i <= int(hi); i++ {
		if i%n == 0 {
			continue
		}
		x := HalfUp(area.X + (origin+float64(i)*step)*area.W)
		paint.Line(p, x, y0, x, area.Y)
	}
}

// fillHorizontal adds horizontal lines across the area every
// spacing pixels, from the top of the area down.
func fillHorizontal(p paint.Painter, area Area, spacing float64) {
	x0 := HalfUp(area.X)
	x1 := HalfUp(area.X + area.W)
	for i := 0; ; i++ {
		off := float64(i) * spacing
		if !(off < area.H) {
			break
		}
		y := HalfDown(area.Y + off)
		paint.Line(p, x0, y, x1, y)
	}
}

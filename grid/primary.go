// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"cogentcore.org/gridline/paint"
)

// Dim is the axis dimension a set of ticks runs along.
type Dim int32

const (
	// X is the horizontal axis; its grid lines are vertical.
	X Dim = iota

	// Y is the vertical axis family (y and y2); its grid lines are horizontal.
	Y
)

func (d Dim) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return fmt.Sprintf("Dim(%d)", int32(d))
}

// DrawAxisGrid draws one grid line for each tick with HasTick set,
// along the given dimension, using the styles of the axes involved.
func DrawAxisGrid(p paint.Painter, dim Dim, area Area, ticks []Tick, styles *Styles) {
	switch dim {
	case X:
		DrawXGrid(p, area, ticks, styles.X)
	case Y:
		DrawYGrid(p, area, ticks, styles)
	}
}

// DrawYGrid draws a horizontal line across the area for each y tick
// with HasTick set, styled by the tick's axis. Ticks of an axis
// without DrawGrid are skipped; if neither y axis draws a grid,
// nothing is done.
func DrawYGrid(p paint.Painter, area Area, ticks []Tick, styles *Styles) {
	if area.Empty() || (!styles.Y.DrawGrid && !styles.Y2.DrawGrid) {
		return
	}
	x0 := HalfUp(area.X)
	paint.Scoped(p, func() {
		for _, tk := range ticks {
			if !tk.HasTick {
				continue
			}
			st, ok := styles.YStyle(tk.Axis)
			if !ok || !st.DrawGrid {
				continue
			}
			y := HalfDown(area.Y + tk.Pos*area.H)
			st.styled(p, func() {
				p.BeginPath()
				paint.Line(p, x0, y, x0+area.W, y)
				p.Stroke()
			})
		}
	})
}

// DrawXGrid draws a vertical line from the bottom to the top of the
// area for each x tick with HasTick set.
func DrawXGrid(p paint.Painter, area Area, ticks []Tick, st AxisStyle) {
	if area.Empty() || !st.DrawGrid {
		return
	}
	y0 := HalfDown(area.Y + area.H)
	st.styled(p, func() {
		for _, tk := range ticks {
			if !tk.HasTick {
				continue
			}
			x := HalfUp(area.X + tk.Pos*area.W)
			p.BeginPath()
			paint.Line(p, x, y0, x, area.Y)
			p.Stroke()
		}
	})
}

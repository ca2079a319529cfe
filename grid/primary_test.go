// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"image/color"
	"testing"

	"cogentcore.org/gridline/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
	gray = color.RGBA{128, 128, 128, 255}
)

// solidOnly is a painter without dash support.
type solidOnly struct {
	paint.Painter
}

func solidStyle(c color.Color) AxisStyle {
	return AxisStyle{DrawGrid: true, StrokeColor: c, LineWidth: 1}
}

// assertClean asserts that no style state leaked out of a drawing pass.
func assertClean(t *testing.T, rc *paint.Recorder) {
	t.Helper()
	assert.Equal(t, 0, rc.Depth(), "unbalanced save / restore")
	assert.Empty(t, rc.Style.Dash, "dash pattern leaked")
}

func TestXGridCoverage(t *testing.T) {
	rc := paint.NewRecorder()
	area := Area{X: 0, Y: 0, W: 300, H: 150}
	ticks := []Tick{{Pos: 0.2, HasTick: true}, {Pos: 0.4}, {Pos: 0.6, HasTick: true}}
	DrawXGrid(rc, area, ticks, solidStyle(gray))

	segs := rc.Render.Segments()
	assert.Equal(t, []paint.Segment{
		{X0: 60.5, Y0: 149.5, X1: 60.5, Y1: 0},
		{X0: 180.5, Y0: 149.5, X1: 180.5, Y1: 0},
	}, segs)
	for _, it := range rc.Render {
		assert.Equal(t, gray, it.Style.Color)
		assert.Equal(t, 1.0, it.Style.Width)
	}
	assertClean(t, rc)
}

func TestXGridOffsetArea(t *testing.T) {
	rc := paint.NewRecorder()
	area := Area{X: 40.3, Y: 20.2, W: 200, H: 100}
	DrawXGrid(rc, area, []Tick{{Pos: 0, HasTick: true}, {Pos: 1, HasTick: true}}, solidStyle(gray))
	assert.Equal(t, []paint.Segment{
		{X0: 40.5, Y0: 119.5, X1: 40.5, Y1: 20.2},
		{X0: 240.5, Y0: 119.5, X1: 240.5, Y1: 20.2},
	}, rc.Render.Segments())
}

func TestYGrid(t *testing.T) {
	rc := paint.NewRecorder()
	area := Area{X: 10, Y: 20, W: 200, H: 100}
	ticks := []Tick{
		{Pos: 0, HasTick: true, Axis: Primary},
		{Pos: 0.5, HasTick: true, Axis: Secondary},
		{Pos: 0.75, HasTick: false, Axis: Primary},
		{Pos: 1, HasTick: true, Axis: Primary},
		{Pos: 0.9, HasTick: true, Axis: YAxis(5)},
	}
	y2 := solidStyle(blue)
	y2.DashPattern = []float64{3, 3}
	y2.LineWidth = 2
	st := &Styles{Y: solidStyle(red), Y2: y2}
	DrawYGrid(rc, area, ticks, st)

	require.Len(t, rc.Render, 3)
	assert.Equal(t, []paint.Segment{{X0: 10.5, Y0: 19.5, X1: 210.5, Y1: 19.5}}, rc.Render[0].Segments)
	assert.Equal(t, red, rc.Render[0].Style.Color)
	assert.Empty(t, rc.Render[0].Style.Dash)

	assert.Equal(t, []paint.Segment{{X0: 10.5, Y0: 69.5, X1: 210.5, Y1: 69.5}}, rc.Render[1].Segments)
	assert.Equal(t, blue, rc.Render[1].Style.Color)
	assert.Equal(t, 2.0, rc.Render[1].Style.Width)
	assert.Equal(t, []float64{3, 3}, rc.Render[1].Style.Dash)

	assert.Equal(t, []paint.Segment{{X0: 10.5, Y0: 119.5, X1: 210.5, Y1: 119.5}}, rc.Render[2].Segments)
	assert.Empty(t, rc.Render[2].Style.Dash)
	assertClean(t, rc)
}

func TestYGridPerAxisToggle(t *testing.T) {
	area := Area{X: 0, Y: 0, W: 100, H: 100}
	ticks := []Tick{{Pos: 0.25, HasTick: true}, {Pos: 0.5, HasTick: true, Axis: Secondary}}

	rc := paint.NewRecorder()
	DrawYGrid(rc, area, ticks, &Styles{Y: solidStyle(red), Y2: AxisStyle{}})
	assert.Equal(t, []paint.Segment{{X0: 0.5, Y0: 24.5, X1: 100.5, Y1: 24.5}}, rc.Render.Segments())

	rc = paint.NewRecorder()
	DrawYGrid(rc, area, ticks, &Styles{Y2: solidStyle(blue)})
	assert.Equal(t, []paint.Segment{{X0: 0.5, Y0: 49.5, X1: 100.5, Y1: 49.5}}, rc.Render.Segments())

	rc = paint.NewRecorder()
	DrawYGrid(rc, area, ticks, &Styles{})
	assert.Empty(t, rc.Render)
	assertClean(t, rc)
}

func TestHiddenTicksNeverDrawn(t *testing.T) {
	area := Area{X: 0, Y: 0, W: 300, H: 150}
	var ticks []Tick
	for i := 0; i <= 20; i++ {
		ticks = append(ticks, Tick{Pos: float64(i) / 20, Axis: YAxis(i % 2)})
	}
	st := &Styles{X: solidStyle(gray), Y: solidStyle(red), Y2: solidStyle(blue)}
	rc := paint.NewRecorder()
	DrawAxisGrid(rc, X, area, ticks, st)
	DrawAxisGrid(rc, Y, area, ticks, st)
	assert.Empty(t, rc.Render.Segments())
	assertClean(t, rc)
}

func TestDrawGridOff(t *testing.T) {
	rc := paint.NewRecorder()
	DrawXGrid(rc, Area{W: 100, H: 100}, []Tick{{Pos: 0.5, HasTick: true}}, AxisStyle{StrokeColor: gray, LineWidth: 1})
	assert.Empty(t, rc.Render)
}

func TestPrimaryDeterministic(t *testing.T) {
	area := Area{X: 12.7, Y: 8.2, W: 333.3, H: 181.9}
	xt := []Tick{{Pos: 0.1, HasTick: true}, {Pos: 0.35, HasTick: true}, {Pos: 0.9, HasTick: true}}
	yt := []Tick{{Pos: 0.2, HasTick: true}, {Pos: 0.7, HasTick: true, Axis: Secondary}}
	x := solidStyle(gray)
	x.DashPattern = []float64{4, 2}
	st := &Styles{X: x, Y: solidStyle(red), Y2: solidStyle(blue)}

	draw := func() paint.Render {
		rc := paint.NewRecorder()
		DrawAxisGrid(rc, Y, area, yt, st)
		DrawAxisGrid(rc, X, area, xt, st)
		return rc.Render
	}
	assert.Equal(t, draw(), draw())
}

func TestDashScoping(t *testing.T) {
	rc := paint.NewRecorder()
	st := solidStyle(gray)
	st.DashPattern = []float64{4, 2}
	DrawXGrid(rc, Area{W: 100, H: 50}, []Tick{{Pos: 0.5, HasTick: true}}, st)
	require.Len(t, rc.Render, 1)
	assert.Equal(t, []float64{4, 2}, rc.Render[0].Style.Dash)
	assertClean(t, rc)

	// later unrelated drawing is solid
	rc.BeginPath()
	paint.Line(rc, 0, 0, 10, 10)
	rc.Stroke()
	assert.Empty(t, rc.Render[1].Style.Dash)
}

func TestDashFallback(t *testing.T) {
	rc := paint.NewRecorder()
	st := solidStyle(gray)
	st.DashPattern = []float64{4, 2}
	DrawXGrid(solidOnly{rc}, Area{W: 100, H: 50}, []Tick{{Pos: 0.5, HasTick: true}}, st)
	require.Len(t, rc.Render, 1)
	assert.Empty(t, rc.Render[0].Style.Dash)
	assertClean(t, rc)
}

func TestPrimaryEmptyArea(t *testing.T) {
	ticks := []Tick{{Pos: 0.5, HasTick: true}}
	st := &Styles{X: solidStyle(gray), Y: solidStyle(red)}
	for _, area := range []Area{{W: 0, H: 10}, {W: 10, H: 0}, {W: -1, H: -1}} {
		rc := paint.NewRecorder()
		DrawAxisGrid(rc, X, area, ticks, st)
		DrawAxisGrid(rc, Y, area, ticks, st)
		assert.Empty(t, rc.Render)
		assertClean(t, rc)
	}
}

func TestAxisStyleFromOptions(t *testing.T) {
	st := AxisStyleFromOptions(configAxis(true, "rgb(200,0,0)", 0.5, []float64{2, 2}))
	assert.True(t, st.DrawGrid)
	assert.Equal(t, color.RGBA{200, 0, 0, 255}, st.StrokeColor)
	assert.Equal(t, 0.5, st.LineWidth)
	assert.Equal(t, []float64{2, 2}, st.DashPattern)

	st = AxisStyleFromOptions(configAxis(true, "not-a-color", 1, []float64{5}))
	assert.Equal(t, DefaultLineColor, st.StrokeColor)
	assert.Nil(t, st.DashPattern)

	st = AxisStyleFromOptions(configAxis(false, "red", 1, nil))
	assert.False(t, st.DrawGrid)
}

func TestDimString(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "Y", Y.String())
	assert.Equal(t, "Dim(3)", Dim(3).String())
}

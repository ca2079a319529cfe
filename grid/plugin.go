// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"log/slog"

	"cogentcore.org/gridline/config"
	"cogentcore.org/gridline/paint"
)

// Host is the narrow read-only view of the chart that the grid
// plugin uses during a repaint.
type Host interface {

	// Layout returns the plotting area and the current tick positions.
	Layout() Layout

	// AxisOptions returns the grid options in effect for the named
	// axis: x, y or y2.
	AxisOptions(axis string) config.AxisOptions

	// DetailOptions returns the adaptive sub-grid options.
	DetailOptions() config.DetailOptions
}

// Event is a repaint notification sent by the host to its plugins.
type Event struct {

	// Host is the chart being painted.
	Host Host

	// Painter is the drawing surface for this repaint.
	Painter paint.Painter
}

// Handlers are the event handlers a plugin returns on activation.
// Nil handlers are not called.
type Handlers struct {

	// BeforePaint is called before the chart is painted.
	BeforePaint func(e *Event)
}

// Plugin draws the grid lines of a chart before each repaint.
type Plugin struct {

	// Stylers adjust the sub-grid style after it has been
	// resolved from the host options, on every repaint.
	Stylers DetailStylers

	// host is the chart the plugin has been activated on.
	host Host
}

// NewPlugin returns a new grid [Plugin].
func NewPlugin() *Plugin {
	return &Plugin{}
}

func (pl *Plugin) String() string {
	return "Gridline Plugin"
}

// Activate attaches the plugin to the given host and
// returns its event handlers.
func (pl *Plugin) Activate(h Host) Handlers {
	pl.host = h
	return Handlers{BeforePaint: pl.beforePaint}
}

// Host returns the host the plugin is active on, or nil.
func (pl *Plugin) Host() Host {
	return pl.host
}

// Destroy detaches the plugin from its host.
func (pl *Plugin) Destroy() {
	pl.host = nil
}

func (pl *Plugin) beforePaint(e *Event) {
	h := e.Host
	if h == nil {
		h = pl.host
	}
	if h == nil || e.Painter == nil {
		slog.Debug("grid: repaint without host or painter")
		return
	}
	ly := h.Layout()
	st := pl.ResolveStyles(h)
	slog.Debug("grid: repaint", "area", ly.Area, "xticks", len(ly.XTicks), "yticks", len(ly.YTicks), "detailed", st.Detailed)
	Draw(e.Painter, ly, st)
}

// ResolveStyles resolves the styles of all axes from the host options.
func (pl *Plugin) ResolveStyles(h Host) *Styles {
	xo := h.AxisOptions(config.AxisX)
	st := &Styles{
		X:        AxisStyleFromOptions(xo),
		Y:        AxisStyleFromOptions(h.AxisOptions(config.AxisY)),
		Y2:       AxisStyleFromOptions(h.AxisOptions(config.AxisY2)),
		Detailed: xo.DrawGrid && xo.DetailedGrid,
	}
	if st.Detailed {
		st.Detail = DetailStyleFromOptions(h.DetailOptions())
		pl.Stylers.Run(&st.Detail)
	}
	return st
}

// Draw draws the full grid for one repaint: the y axes, then the
// x axis, then the x sub-grid if it is turned on.
func Draw(p paint.Painter, ly Layout, st *Styles) {
	DrawAxisGrid(p, Y, ly.Area, ly.YTicks, st)
	DrawAxisGrid(p, X, ly.Area, ly.XTicks, st)
	if st.Detailed {
		DrawDetailedGrid(p, ly.Area, ly.XTicks, st.Detail)
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart provides a minimal chart host: it owns the layout
// and options of a chart, registers plugins, and sends them a
// before-paint event on every repaint.
package chart

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/gridline/config"
	"cogentcore.org/gridline/grid"
	"cogentcore.org/gridline/paint"
)

// Plugin is a chart plugin, such as [grid.Plugin].
type Plugin interface {
	fmt.Stringer

	// Activate attaches the plugin to the chart and returns
	// the handlers it wants called.
	Activate(h grid.Host) grid.Handlers

	// Destroy detaches the plugin. It is called once, when
	// the chart is destroyed.
	Destroy()
}

// registered is a plugin with the handlers it returned on activation.
type registered struct {
	plugin   Plugin
	handlers grid.Handlers
}

// Chart is a chart host. It is safe to use from multiple goroutines,
// but handlers are called without the chart lock held, so a repaint
// sees a consistent set of plugins and may read the chart freely.
type Chart struct {

	// layout is the current plotting area and ticks.
	layout grid.Layout

	// options are the grid options.
	options *config.Options

	// plugins are the registered plugins, in registration order.
	plugins []registered

	mu sync.Mutex
}

// New returns a new [Chart] with the given layout and options.
// Nil options use the defaults.
func New(ly grid.Layout, opts *config.Options) *Chart {
	if opts == nil {
		opts = config.NewOptions()
	}
	return &Chart{layout: ly, options: opts}
}

// FromScene returns a new [Chart] for the given scene. The scene
// is validated first, and the chart does not share memory with it.
func FromScene(sc *config.Scene) (*Chart, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	ly := grid.Layout{
		Area: grid.Area{X: sc.Area.X, Y: sc.Area.Y, W: sc.Area.W, H: sc.Area.H},
	}
	for _, ts := range sc.XTicks {
		ly.XTicks = append(ly.XTicks, grid.Tick{Pos: ts.Pos, HasTick: !ts.Hidden})
	}
	for i, ts := range sc.YTicks {
		ax, err := grid.YAxisFromName(ts.Axis)
		if err != nil {
			return nil, fmt.Errorf("yticks[%d]: %w", i, err)
		}
		ly.YTicks = append(ly.YTicks, grid.Tick{Pos: ts.Pos, HasTick: !ts.Hidden, Axis: ax})
	}
	return New(ly, sc.Grid.Clone()), nil
}

// Layout returns a copy of the current layout.
func (c *Chart) Layout() grid.Layout {
	c.mu.Lock()
	defer c.mu.Unlock()
	ly := c.layout
	ly.XTicks = slices.Clone(ly.XTicks)
	ly.YTicks = slices.Clone(ly.YTicks)
	return ly
}

// SetLayout sets the layout used by subsequent repaints.
func (c *Chart) SetLayout(ly grid.Layout) *Chart {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layout = ly
	return c
}

// Options returns a copy of the chart options.
func (c *Chart) Options() *config.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options.Clone()
}

// SetOptions sets the options used by subsequent repaints.
// Nil options use the defaults.
func (c *Chart) SetOptions(opts *config.Options) *Chart {
	if opts == nil {
		opts = config.NewOptions()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = opts
	return c
}

// AxisOptions returns the grid options in effect for the named axis.
func (c *Chart) AxisOptions(axis string) config.AxisOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options.ForAxis(axis)
}

// DetailOptions returns the adaptive sub-grid options.
func (c *Chart) DetailOptions() config.DetailOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.options.Detail
	d.Level2Pattern = slices.Clone(d.Level2Pattern)
	return d
}

// Register activates the given plugins on the chart, in order.
func (c *Chart) Register(pls ...Plugin) *Chart {
	for _, pl := range pls {
		h := pl.Activate(c)
		slog.Debug("chart: registered plugin", "plugin", pl.String())
		c.mu.Lock()
		c.plugins = append(c.plugins, registered{plugin: pl, handlers: h})
		c.mu.Unlock()
	}
	return c
}

// Plugins returns the names of the registered plugins, in order.
func (c *Chart) Plugins() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, len(c.plugins))
	for i, r := range c.plugins {
		names[i] = r.plugin.String()
	}
	return names
}

// Paint sends a before-paint event to every registered plugin, in
// registration order, drawing into the given painter.
func (c *Chart) Paint(p paint.Painter) {
	c.mu.Lock()
	hs := make([]func(*grid.Event), 0, len(c.plugins))
	for _, r := range c.plugins {
		if r.handlers.BeforePaint != nil {
			hs = append(hs, r.handlers.BeforePaint)
		}
	}
	c.mu.Unlock()
	e := &grid.Event{Host: c, Painter: p}
	for _, h := range hs {
		h(e)
	}
}

// Destroy destroys every registered plugin, in reverse order of
// registration, and removes them from the chart.
func (c *Chart) Destroy() {
	c.mu.Lock()
	pls := c.plugins
	c.plugins = nil
	c.mu.Unlock()
	for i := len(pls) - 1; i >= 0; i-- {
		pls[i].plugin.Destroy()
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/gridline/chart"
	"cogentcore.org/gridline/colors"
	"cogentcore.org/gridline/config"
	"cogentcore.org/gridline/grid"
	"cogentcore.org/gridline/paint/raster"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var output string
	var detailed bool
	cmd := &cobra.Command{
		Use:   "render <scene.toml|scene.yaml>",
		Short: "Render a scene file to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.OpenScene(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("detailed") {
				setDetailed(sc, detailed)
			}
			if output == "-" {
				pt, err := paintScene(sc)
				if err != nil {
					return err
				}
				return pt.EncodePNG(cmd.OutOrStdout())
			}
			out := outputFile(args[0], output)
			if err := renderScene(sc, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG file, or - for standard output (default: the scene file name with a .png extension)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "turn the adaptive x sub-grid on or off")
	return cmd
}

// outputFile returns the PNG file to render the given scene file to.
func outputFile(scene, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(scene, filepath.Ext(scene)) + ".png"
}

// setDetailed overrides the detailedGrid option of the x axis.
func setDetailed(sc *config.Scene, on bool) {
	ov := sc.Grid.Axes[config.AxisX]
	ov.DetailedGrid = &on
	sc.Grid.SetAxis(config.AxisX, ov)
}

// paintScene paints the grid of the given scene over its background.
func paintScene(sc *config.Scene) (*raster.Painter, error) {
	c, err := chart.FromScene(sc)
	if err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	defer c.Destroy()
	c.Register(grid.NewPlugin())

	pt := raster.New(sc.Width, sc.Height)
	pt.Fill(colors.LogFromString(sc.Background, color.White))
	c.Paint(pt)
	return pt, nil
}

// renderScene renders the grid of the given scene and saves it
// as a PNG image to the given file.
func renderScene(sc *config.Scene, filename string) error {
	pt, err := paintScene(sc)
	if err != nil {
		return err
	}
	if err := pt.SavePNG(filename); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	slog.Debug("rendered scene", "file", filename, "size", pt.Size())
	return nil
}

// renderFile opens the given scene file and renders it to output.
func renderFile(scene, output string) error {
	sc, err := config.OpenScene(scene)
	if err != nil {
		return err
	}
	return renderScene(sc, output)
}

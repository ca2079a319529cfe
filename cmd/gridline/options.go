// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"

	"cogentcore.org/gridline/colors"
	"cogentcore.org/gridline/config"
	"cogentcore.org/gridline/grid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newOptionsCmd() *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "options [scene.toml|scene.yaml]",
		Short: "Print the resolved grid styles of a scene, or the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := config.NewScene()
			if len(args) == 1 {
				var err error
				sc, err = config.OpenScene(args[0])
				if err != nil {
					return err
				}
			}
			if err := printOptions(cmd.OutOrStdout(), &sc.Grid, termenv.ColorProfile()); err != nil {
				return err
			}
			if write == "" {
				return nil
			}
			return config.SaveScene(sc, write)
		},
	}
	cmd.Flags().StringVarP(&write, "write", "w", "", "also save the scene with all defaults filled in to this .toml or .yaml file")
	return cmd
}

// swatch returns a block in the given color followed by its hex
// value, using the given terminal color profile.
func swatch(c color.Color, profile termenv.Profile) string {
	if c == nil {
		return "none"
	}
	hex := colors.AsHex(c)
	return termenv.String("███").Foreground(profile.Color(hex)).String() + " " + hex
}

// printOptions writes the styles resolved from the given options
// for every axis and the sub-grid to w.
func printOptions(w io.Writer, opts *config.Options, profile termenv.Profile) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	for _, axis := range config.AxisNames {
		ao := opts.ForAxis(axis)
		st := grid.AxisStyleFromOptions(ao)
		fmt.Fprintf(w, "%-3s drawGrid=%-5t width=%g pattern=%v detailed=%t color=%s\n",
			axis, st.DrawGrid, st.LineWidth, st.DashPattern, ao.DetailedGrid, swatch(st.StrokeColor, profile))
	}
	d := grid.DetailStyleFromOptions(opts.Detail)
	fmt.Fprintf(w, "detail divisions=%d minSpacing=%g width=%g pattern=%v\n",
		d.Divisions, d.MinSpacing, d.LineWidth, d.Level2Pattern)
	fmt.Fprintf(w, "  level1=%s\n  level2=%s\n", swatch(d.Level1Color, profile), swatch(d.Level2Color, profile))
	return nil
}

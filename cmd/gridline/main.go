// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gridline renders the grid lines of a chart described
// in a scene file (TOML or YAML) to a PNG image.
package main

import (
	"io"
	"os"

	"cogentcore.org/gridline/logx"
	"github.com/spf13/cobra"
)

// Version is the version of the gridline command.
var Version = "v0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the root command, writing command output
// to out and log messages to logw.
func newRootCmd(out, logw io.Writer) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "gridline",
		Short: "Render chart grid lines from scene files",
		Long: `gridline draws the grid lines of a chart, including the optional
adaptive sub-grid between x ticks, for the plotting area and tick
positions given in a scene file, and saves the result as a PNG image.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetVerbose(verbose)
			logx.SetDefaultLogger(logw)
		},
	}
	root.SetOut(out)
	root.SetErr(logw)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	root.AddCommand(newRenderCmd(), newWatchCmd(), newOptionsCmd(), newVersionCmd())
	return root
}

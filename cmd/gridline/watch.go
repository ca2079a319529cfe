// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/gridline/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch <scene.toml|scene.yaml>",
		Short: "Render a scene file again every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			out := outputFile(args[0], output)
			fmt.Fprintln(cmd.OutOrStdout(), "watching", args[0], "->", out)
			return watch(ctx, args[0], out, nil)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG file (default: the scene file name with a .png extension)")
	return cmd
}

// watch renders the scene file to output, and then again every time
// the scene file is written or replaced, until ctx is done. Render
// errors are logged and do not stop watching. If rendered is non-nil,
// the result of every render is sent to it, unless it is full.
func watch(ctx context.Context, scene, output string, rendered chan<- error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace the file, so the directory is watched
	abs, err := filepath.Abs(scene)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", scene, err)
	}

	render := func() {
		err := errors.Log(renderFile(scene, output))
		if err == nil {
			slog.Info("rendered", "scene", scene, "output", output)
		}
		if rendered != nil {
			select {
			case rendered <- err:
			default:
			}
		}
	}
	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				render()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger used by
// the gridline command.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It defaults to [slog.LevelInfo], or [slog.LevelDebug] when built
// with the "debug" tag.
var UserLevel = defaultUserLevel

// SetDefaultLogger installs a text handler writing to w at
// [UserLevel] as the default slog logger.
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// SetVerbose lowers [UserLevel] to debug when verbose is set.
func SetVerbose(verbose bool) {
	if verbose {
		UserLevel = slog.LevelDebug
	}
}

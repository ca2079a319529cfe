// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for handling errors that
// should be logged rather than returned, along with the
// standard library functions so that it can be used in place
// of the standard errors package.
package errors

import (
	"errors"
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// New is [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	b := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(b, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return b
}

func TestLog(t *testing.T) {
	b := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := New("bad grid")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, b.String(), "bad grid")
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")
	err := Join(a, b)
	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
	assert.NoError(t, Join())
}

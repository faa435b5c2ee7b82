// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default structured logger of command line
// tools from verbosity flags.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. It is typically set with [LevelFromFlags].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a text logger writing to w that shows messages at
// or above [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// SetDefaultLogger sets the [slog.Default] logger to a [NewLogger]
// writing to stderr, and returns it.
func SetDefaultLogger() *slog.Logger {
	l := NewLogger(os.Stderr)
	slog.SetDefault(l)
	return l
}

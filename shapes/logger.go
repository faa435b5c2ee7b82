// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the shape generators.
// By default nothing is logged. Generators log at [slog.LevelDebug]
// when they fall back on degenerate parameters (for example a
// resolution too small to enclose any area).
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by the shape generators.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// degenerate logs that the named shape was given parameters that
// produce an empty buffer.
func degenerate(shape string, args ...any) *Buffer {
	Logger().Debug("shapes: degenerate parameters, returning empty buffer", append([]any{"shape", shape}, args...)...)
	return NewEmptyBuffer()
}

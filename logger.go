// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package arcam

import (
	"log/slog"

	"github.com/gogpu/arcam/internal/logging"
)

// SetLogger configures the logger for arcam and all its sub-packages.
// By default, arcam produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by arcam:
//   - [slog.LevelDebug]: per-attempt camera retries, texture rebinds
//   - [slog.LevelInfo]: lifecycle events (session started, texture bound, loop started)
//   - [slog.LevelWarn]: GL errors raised by a frame
//   - [slog.LevelError]: the camera texture never arrived
//
// Example:
//
//	arcam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by arcam.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.L()
}

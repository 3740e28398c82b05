// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// tracker server and client.
//
// The Logger type embeds zerolog.Logger so the whole zerolog API is
// available on *Logger. Request-scoped loggers are obtained with
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// ClientLogFileName is the file the client writes to inside its data
// directory, so log lines never land on the TUI screen.
const ClientLogFileName = "logs"

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// the role label, a timestamp and the calling function name in the "func"
// field. level is a zerolog level name; unknown values fall back to debug.
func NewLogger(role, level string) *Logger {
	return New(os.Stdout, role, level)
}

// NewClientLogger returns a logger writing to [ClientLogFileName] inside
// dir. If the file cannot be opened the logger discards output.
func NewClientLogger(role, dir, level string) *Logger {
	if dir == "" {
		execPath, _ := os.Executable()
		dir = filepath.Dir(execPath)
	}

	var w io.Writer = io.Discard
	if err := os.MkdirAll(dir, 0o700); err == nil {
		logFile, err := os.OpenFile(filepath.Join(dir, ClientLogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err == nil {
			w = logFile
		}
	}

	return New(w, role, level)
}

// New builds a logger on an arbitrary writer.
func New(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with fields
// without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. zerolog falls back to
// its disabled logger when nothing is attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

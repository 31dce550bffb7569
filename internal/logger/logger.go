// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the site server and the siteadmin tool.
//
// Loggers travel by pointer. Request handlers do not hold one; they pull the
// request-scoped logger out of the context with FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. See New.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New returns a JSON logger writing to w. Every record carries the role,
// a timestamp and, under "func", the name of the calling function.
//
// New sets the global level to Debug; call SetLevel afterwards to narrow it.
// The logger also becomes the fallback for contexts that carry none.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zl := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	zerolog.DefaultContextLogger = &zl

	return &Logger{zl}
}

// SetLevel changes the global level. Empty means keep the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger carrying an extra string field. The receiver
// is not modified.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// StdLogger adapts l for packages that only accept a *log.Logger, such as
// net/http's server error log.
func (l *Logger) StdLogger() *stdlog.Logger {
	return stdlog.New(l.With("source", "stdlib"), "", 0)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, falling back to the most
// recently created New logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}

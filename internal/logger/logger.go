// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors, the rotating file sink and context-aware helpers
// used throughout the server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest. Components that only speak the
// standard library's *log.Logger are given one from [NewStdLogger], so every
// record ends up in the same sinks.
package logger

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"runtime"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	sink io.Closer
}

// NewLogger constructs a *Logger for the given role label (e.g. "server").
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout, zerolog.DebugLevel)
}

// NewLoggerWithSink constructs a *Logger like [NewLogger] and attaches the
// file sink described by cfg.
//
// A nil cfg, or one with Enable set to false, attaches nothing and creates
// no files. When cfg.DisableConsole is set stdout output is dropped, even if
// the sink itself is disabled.
//
// The returned logger also becomes the process default (see
// [Logger.SetAsDefault]). The caller owns it and must [Logger.Close] it to
// flush pending records.
func NewLoggerWithSink(role string, cfg *config.Logger) (*Logger, error) {
	if cfg == nil {
		l := NewLogger(role)
		l.SetAsDefault()
		return l, nil
	}

	var console io.Writer = os.Stdout
	if cfg.DisableConsole {
		console = io.Discard
	}

	if !cfg.Enable {
		l := newLogger(role, console, zerolog.DebugLevel)
		l.SetAsDefault()
		return l, nil
	}

	sink, err := newFileSink(*cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{sink}
	if !cfg.DisableConsole {
		writers = append(writers, console)
	}

	l := newLogger(role, zerolog.MultiLevelWriter(writers...), min(zerolog.DebugLevel, sink.level))
	l.sink = sink
	l.SetAsDefault()

	return l, nil
}

func newLogger(role string, w io.Writer, globalLevel zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(globalLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// SetAsDefault routes zerolog's global logger and the standard library's
// default logger through l, so that libraries logging on their own end up in
// the same sinks.
func (l *Logger) SetAsDefault() {
	log.Logger = l.Logger
	stdlog.SetFlags(stdlog.Lshortfile)
	stdlog.SetOutput(&stdWriter{logger: l, level: zerolog.InfoLevel})
}

// Close flushes and closes the file sink, if any. It is safe to call on a
// logger without a sink.
func (l *Logger) Close() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// context logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

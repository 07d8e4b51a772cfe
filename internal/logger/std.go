package logger

import (
	stdlog "log"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// callSite matches the "file.go:123: " prefix written by log.Lshortfile.
var callSite = regexp.MustCompile(`^([\w.\-]+\.go:\d+): `)

// NewStdLogger returns a standard library logger that re-emits every line
// through l at the given level. The "file:line" call site recorded by the
// standard logger is kept in the "caller" field.
//
// Used for http.Server.ErrorLog and the migration tool.
func NewStdLogger(l *Logger, level zerolog.Level) *stdlog.Logger {
	return stdlog.New(&stdWriter{logger: l, level: level}, "", stdlog.Lshortfile)
}

type stdWriter struct {
	logger *Logger
	level  zerolog.Level
}

func (w *stdWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\r\n")

	event := w.logger.WithLevel(w.level)
	if m := callSite.FindStringSubmatch(msg); m != nil {
		event = event.Str("caller", m[1])
		msg = msg[len(m[0]):]
	}
	event.Msg(msg)

	return len(p), nil
}

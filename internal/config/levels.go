package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// levelNames maps the level spellings accepted in configuration files to
// zerolog levels. Both the loguru names used by the file sink ("WARNING",
// "SUCCESS", "CRITICAL") and the server verbosity names ("warn", "trace")
// are understood.
var levelNames = map[string]zerolog.Level{
	"TRACE":    zerolog.TraceLevel,
	"DEBUG":    zerolog.DebugLevel,
	"INFO":     zerolog.InfoLevel,
	"SUCCESS":  zerolog.InfoLevel,
	"WARN":     zerolog.WarnLevel,
	"WARNING":  zerolog.WarnLevel,
	"ERROR":    zerolog.ErrorLevel,
	"CRITICAL": zerolog.FatalLevel,
	"FATAL":    zerolog.FatalLevel,
}

// ParseLevel converts a case-insensitive level name into a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	level, ok := levelNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}

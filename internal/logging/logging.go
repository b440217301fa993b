// Package logging configures the global zerolog logger for the command line tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds a timestamped logger writing JSON, or pretty console
// output when format is "console".
func NewLogger(out io.Writer, format string) zerolog.Logger {
	if strings.EqualFold(format, "json") {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

// Setup sets the global level and replaces the global logger. Output goes to
// stderr so it never mixes with the console game's board output.
func Setup(level, format string) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = NewLogger(os.Stderr, format)
	return log.Logger
}

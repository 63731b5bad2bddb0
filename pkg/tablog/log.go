// Package tablog carries the shared application logger. The TUI owns the
// terminal, so logs go to a file once the app boots.
package tablog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Zero is the shared logger. It starts on stderr and is redirected by
// InitFileLogger during startup.
var Zero = NewZeroLogger(os.Stderr)

// NewZeroLogger returns a console-format logger writing to out.
func NewZeroLogger(out io.Writer) *zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	logger := zerolog.New(output).With().Timestamp().Logger()

	return &logger
}

// InitFileLogger points Zero at the given log file, creating it if needed.
// The file stays open for the lifetime of the process.
func InitFileLogger(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	Zero = NewZeroLogger(f)

	return nil
}

// UpdateZeroLogLevel sets the level of the shared logger.
func UpdateZeroLogLevel(logLevel string) error {
	level := parseLevel(logLevel)
	zeroLogger := Zero.With().Logger().Level(level)
	Zero = &zeroLogger
	return nil
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warning", "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

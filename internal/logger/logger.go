// Package logger configure the application's logging.
//
// It uses *ZeroLog* for structured logging: JSON output by
// default so log processors can consume it, and a human-friendly
// console writer in the local environment.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger.
//
// level is a zerolog level name ("debug", "info", ...); unknown or empty
// values fall back to info. env selects the output format: "local" gets
// the pretty console writer, everything else gets JSON on stderr.
func New(level, env string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(parsed).With().Timestamp().Logger()
	return &logger
}

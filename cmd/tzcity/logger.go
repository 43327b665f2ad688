package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds a console or JSON logger writing to w. Unknown levels
// fall back to warn.
func newLogger(w io.Writer, level, format string) zerolog.Logger {
	if level == "" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	if format == "json" {
		return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(lvl)
}

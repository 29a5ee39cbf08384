// Package rlog configures the engine's zerolog logger: a pretty console
// writer for the interactive solve command, or structured JSON for the
// bench command, whose output is meant to be piped into log aggregation
// rather than read on a terminal. It lives under internal/ rather than a
// single cmd's package, the way the pokerforbots CLI keeps its own
// equivalent (cmd/pokerforbots/shared/logging.go) private to one binary —
// this module has two (solve, bench) that both need a logger, so the
// setup moved here and took an io.Writer instead of hardcoding os.Stderr.
package rlog

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// New configures zerolog with pretty console output, for a terminal.
func New(w io.Writer, debug bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(levelFor(debug)).
		With().
		Timestamp().
		Logger()
}

// NewStructured configures zerolog for structured (JSON) output, for a
// benchmark harness or any other non-interactive caller whose logs are
// meant for a collector rather than a human.
func NewStructured(w io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).
		Level(levelFor(debug)).
		With().
		Timestamp().
		Logger()
}

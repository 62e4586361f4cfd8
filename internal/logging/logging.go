// Package logging builds the zerolog loggers used by the roomplan binaries.
package logging

import (
	"io"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// For returns a console logger when w is a terminal and a JSON logger
// otherwise, so redirected output stays machine readable.
func For(w io.Writer, verbose bool) zerolog.Logger {
	if IsTerminal(w) {
		return New(w, verbose)
	}
	return NewJSON(w, verbose)
}

// New returns a console logger writing to w. Debug output is enabled when
// verbose is set, otherwise the level is info. Colors are only used on a
// terminal.
func New(w io.Writer, verbose bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !IsTerminal(w)}
	return zerolog.New(out).Level(levelFor(verbose)).With().Timestamp().Logger()
}

// NewJSON returns a structured logger for non-interactive use
func NewJSON(w io.Writer, verbose bool) zerolog.Logger {
	return zerolog.New(zerolog.SyncWriter(w)).Level(levelFor(verbose)).With().Timestamp().Logger()
}

// IsTerminal reports whether w is backed by a terminal file descriptor
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func levelFor(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

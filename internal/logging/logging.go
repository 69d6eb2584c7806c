// Package logging builds the slog loggers used by the drivers and the CLI.
//
// Library packages never log unless handed a logger; Discard is their
// default. The CLI uses New, which picks a human-readable text handler when
// the destination is a terminal and JSON otherwise.
package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// New returns a logger writing to w. verbose lowers the level to Debug.
// The handler is text when w is a terminal, JSON otherwise.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if IsTerminal(w) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Component returns l tagged with a component attribute, or Discard when l is nil.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}

	return l.With(slog.String("component", name))
}

// Stderr is New(os.Stderr, verbose).
func Stderr(verbose bool) *slog.Logger { return New(os.Stderr, verbose) }

// Package logger sets up structured logging on log/slog with a tinted
// handler when stderr is a terminal.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// New returns a logger writing to stderr. Colors and the short time
// format are enabled only when stderr is a terminal.
func New(level slog.Level) *slog.Logger {
	isTerminal := isatty.IsTerminal(os.Stderr.Fd())

	timeFormat := time.RFC3339
	if isTerminal {
		timeFormat = time.Stamp
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		NoColor:    !isTerminal,
		TimeFormat: timeFormat,
	})

	return slog.New(handler)
}

// Discard returns a logger that drops everything. Useful as a default
// when no logger is injected.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
}

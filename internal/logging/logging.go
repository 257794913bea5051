// Package logging builds the structured logger shared by the CLI and its
// flows. Records are text key=value lines, normally written to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel keeps interactive sessions quiet unless something goes wrong.
const DefaultLevel = slog.LevelWarn

// New returns a logger writing records at or above level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel accepts debug, info, warn or error in any case. An empty string
// selects DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultLevel, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (valid values: debug, info, warn, error)", s)
	}
	return level, nil
}

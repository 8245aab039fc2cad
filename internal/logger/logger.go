// Package logger configures the zerolog logger used by the tempo command.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, or
	// disabled. Defaults to warn.
	Level string

	// Colors enables ANSI colors in console output.
	Colors bool

	// TimeFormat formats the time field. Defaults to time.RFC3339.
	TimeFormat string
}

// DefaultLevel is the level used when Options.Level is empty.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel parses a level name, case-insensitively. Empty returns
// DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", name)
	}
	return lvl, nil
}

// New returns a logger writing human-readable lines to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = time.RFC3339
	}

	formatter := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !opts.Colors,
		TimeFormat: opts.TimeFormat,
	}
	return zerolog.New(formatter).Level(lvl).With().Timestamp().Logger(), nil
}

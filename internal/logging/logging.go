// Package logging builds the zerolog loggers used by the CLI and the site generator.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Verbose bool // debug events (per page, per copied file)
	Quiet   bool // warnings and errors only; wins over Verbose
	JSON    bool // one JSON object per line instead of console output
	NoColor bool // console output without ANSI colors
}

// Level returns the minimum level selected by the options.
func (o Options) Level() zerolog.Level {
	switch {
	case o.Quiet:
		return zerolog.WarnLevel
	case o.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing to w. The level is set on the logger, not
// globally, so several loggers can coexist in one process.
func New(w io.Writer, opts Options) zerolog.Logger {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    opts.NoColor,
		}
	}
	return zerolog.New(out).Level(opts.Level()).With().Timestamp().Logger()
}

// Component returns a child logger tagged with component=name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

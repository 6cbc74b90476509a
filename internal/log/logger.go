// Package log builds the zerolog logger used by the windcfg command.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the command logger.
type Config struct {
	Level   zerolog.Level // minimum level; zerolog.NoLevel means warn
	Output  io.Writer     // defaults to os.Stderr
	Console bool          // human-readable output instead of JSON lines
	NoColor bool          // disables colour in console output
}

// New returns a logger writing to cfg.Output.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.Kitchen,
		}
	}

	level := cfg.Level
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", "windcfg").
		Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

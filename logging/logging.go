// Package logging configures the diagnostic logger. Diagnostics always go
// to stderr so they never mix with the rendered response on stdout.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Verbose     bool
	EnableColor bool
}

func New(w io.Writer, config Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !config.EnableColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

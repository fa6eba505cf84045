package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexanderramin/courseplan/internal/config"
)

// New returns a zerolog logger writing to out. Every event carries a
// timestamp and the component field. An unparseable level falls back to info.
func New(component string, cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	w := out
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("component", component).Logger()
}

// Nop discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

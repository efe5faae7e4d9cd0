package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/typed-helpers/internal/config"
)

// New creates a zerolog logger writing to stdout
func New(cfg config.LogConfig, service string) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg, service)
}

// NewWithWriter creates a zerolog logger with structured output on w
func NewWithWriter(w io.Writer, cfg config.LogConfig, service string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	// Use pretty console output in development
	if cfg.Format == "pretty" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			Level(ParseLevel(cfg.Level)).
			With().
			Timestamp().
			Caller().
			Str("service", service).
			Logger()
	}

	// JSON output for production
	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// ParseLevel maps a configured level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

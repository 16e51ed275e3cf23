// Package logger configures the application's structured logging.
//
// It uses zerolog and derives the output format and verbosity from the
// observability configuration: console output for humans in development,
// JSON for log pipelines everywhere else.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mappedev/persondir/internal/config"
)

// New builds the application's root logger from the observability config.
//
// Every entry carries the service name and environment so log aggregators
// can split streams per service. The returned logger is the parent of all
// request-scoped loggers created by the context-enhancer middleware.
func New(cfg *config.ObservabilityConfig) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Environment).
		Logger()
}

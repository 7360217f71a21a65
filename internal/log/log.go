// internal/log/log.go
//
// Package log provides gatecrawl's logging abstraction. It is a thin
// interface over zerolog so call sites never import zerolog directly,
// keeping the logging backend swappable.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the interface gatecrawl uses for logging throughout the
// engine. It is intentionally small.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// zerologLogger adapts zerolog.Logger to the Logger interface.
type zerologLogger struct {
	z zerolog.Logger
}

// New constructs a Logger. When json is true, output is newline-delimited
// JSON suitable for log aggregation; otherwise a human-readable console
// writer is used. level is parsed the same way the rest of this lineage's
// CLIs accept "debug"/"info"/"warn"/"error"; an empty or unrecognized
// value falls back to info.
func New(json bool, level string) Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if !json {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	z := zerolog.New(w).Level(parsed).With().Timestamp().Logger()
	return &zerologLogger{z: z}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.z.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.z.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.z.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.z.Error().Msgf(format, args...)
}

// Package logging provides the logger used across dir-archiver.
// It exposes a small Logger interface backed by zerolog so the core
// packages never depend on a concrete logging library.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the interface the rest of the application logs through.
// Key/value pairs follow the message: log.Info("uploaded", "path", p).
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	With(kv ...any) Logger
}

// Config controls level and output format.
type Config struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "console" or "json"
}

type zeroLogger struct {
	l zerolog.Logger
}

// New builds a Logger writing to stderr.
func New(cfg Config) Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput builds a Logger writing to the given writer.
func NewWithOutput(cfg Config, out io.Writer) Logger {
	if strings.EqualFold(cfg.Format, "console") || cfg.Format == "" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &zeroLogger{l: l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return &zeroLogger{l: zerolog.Nop()}
}

func (z *zeroLogger) Debug(msg string, kv ...any) { z.emit(z.l.Debug(), msg, kv) }
func (z *zeroLogger) Info(msg string, kv ...any)  { z.emit(z.l.Info(), msg, kv) }
func (z *zeroLogger) Warn(msg string, kv ...any)  { z.emit(z.l.Warn(), msg, kv) }
func (z *zeroLogger) Error(msg string, kv ...any) { z.emit(z.l.Error(), msg, kv) }

func (z *zeroLogger) With(kv ...any) Logger {
	return &zeroLogger{l: z.l.With().Fields(normalize(kv)).Logger()}
}

func (z *zeroLogger) emit(ev *zerolog.Event, msg string, kv []any) {
	if len(kv) > 0 {
		ev = ev.Fields(normalize(kv))
	}
	ev.Msg(msg)
}

// normalize drops a trailing key with no value so zerolog never panics
// on an odd-length pair list.
func normalize(kv []any) []any {
	if len(kv)%2 != 0 {
		return kv[:len(kv)-1]
	}
	return kv
}

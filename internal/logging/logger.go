package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
	// File, when set, receives a copy of every record and is rotated by size.
	File string
	// Stderr sends console output to stderr, for processes whose stdout carries a protocol.
	Stderr bool
}

// NewLogger returns a structured logger with sane defaults.
func NewLogger(cfg Config) *slog.Logger {
	return newLogger(cfg, output(cfg))
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := WithCommon(nil, cfg.Service, cfg.Version)
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

func output(cfg Config) io.Writer {
	var console io.Writer = os.Stdout
	if cfg.Stderr {
		console = os.Stderr
	}
	if cfg.File == "" {
		return console
	}
	return io.MultiWriter(console, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     14,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

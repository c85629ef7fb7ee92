// Package logging builds the storefront's slog logger and carries it through
// request contexts.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace sits below debug. The backend client logs each attempt at it.
const LevelTrace = slog.Level(-8)

// Config selects level, console format and the optional rolling file.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string
	Version string
	File    FileConfig
}

// FileConfig mirrors lumberjack's rotation knobs. The file is always JSON.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New logs to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter logs to w in cfg.Format and, if enabled, to the rolling file.
// Every sink redacts credentials and visitor PII.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := levels[strings.ToLower(cfg.Level)] // unknown names fall to info

	redact := newRedactor()
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}

	var console slog.Handler

	switch strings.ToLower(cfg.Format) {
	case "text":
		console = slog.NewTextHandler(w, opts)
	case "pretty":
		console = &scrubber{next: charmHandler(w, level), redact: redact}
	default:
		console = slog.NewJSONHandler(w, opts)
	}

	handler := console
	if cfg.File.Enabled && cfg.File.Path != "" {
		handler = tee{console, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}, opts)}
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

var levels = map[string]slog.Level{
	"trace":   LevelTrace,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// charmHandler is the local development printer. Charm has no trace level so
// anything under info prints as debug.
func charmHandler(w io.Writer, level slog.Level) *log.Logger {
	cl := log.ErrorLevel

	switch {
	case level < slog.LevelInfo:
		cl = log.DebugLevel
	case level < slog.LevelWarn:
		cl = log.InfoLevel
	case level < slog.LevelError:
		cl = log.WarnLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           cl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// Package logger owns the process-wide slog instance. Features log
// through the *slog.Logger carried in AppContext; this package builds
// it from config and provides a fallback for code that logs before
// Init runs.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/romch007/youtube/internal/config"
)

// Format selects the handler encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config controls the global logger. The zero value logs text at info.
type Config struct {
	Level      string
	Format     Format
	Component  string
	WithSource bool
}

var global atomic.Pointer[slog.Logger]

// InitFromConfig initializes the global logger from app config.
func InitFromConfig(c *config.Config) {
	if c == nil {
		Init(nil)
		return
	}
	Init(&Config{
		Level:      c.Log.Level,
		Format:     Format(c.Log.Format),
		Component:  c.Log.Component,
		WithSource: c.Log.Source,
	})
}

// Init replaces the global logger. Safe to call more than once.
func Init(c *Config) {
	if c == nil {
		c = &Config{}
	}
	global.Store(build(c))
}

func build(c *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(c.Level),
		AddSource: c.WithSource,
	}

	var handler slog.Handler
	switch Format(strings.ToLower(string(c.Format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		// readable timestamps for terminal output
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.DateTime))
			}
			return a
		}
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	if c.Component != "" {
		log = log.With("component", c.Component)
	}
	return log
}

// L returns the global logger, initializing a default one on first use.
func L() *slog.Logger {
	if log := global.Load(); log != nil {
		return log
	}
	Init(nil)
	return global.Load()
}

// With returns a child of the global logger with extra attributes.
func With(args ...any) *slog.Logger { return L().With(args...) }

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

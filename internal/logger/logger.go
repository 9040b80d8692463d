// Package logger configures the application slog logger and carries a request scoped
// logger through the request context.
//
// dev and test environments log to the console with tint, staging and prod log JSON.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone is above every level slog emits and is used to silence the logger (e.g in tests).
const LevelNone = slog.Level(12)

// ParseLogLevel converts a LOG_LEVEL value to a slog.Level.
// Unknown values fall back to debug.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off":
		return LevelNone
	}

	// accept the output of slog.Level.String(), e.g "ERROR+4"
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err == nil {
		return l
	}
	return slog.LevelDebug
}

// InitLogger creates the application logger and installs it as the slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch environment {
	case "prod", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

type contextKey struct{}

// requestLogContext holds the request logger and the attributes that are added to the
// final request log line.
type requestLogContext struct {
	logger *slog.Logger

	mu    sync.Mutex
	attrs []slog.Attr
}

// ContextWithLogger returns a copy of ctx that carries l as the request logger.
func ContextWithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, &requestLogContext{logger: l})
}

// ContextRequestLogger returns the request logger stored in ctx, or the default logger
// when ctx does not carry one.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if rlc, ok := ctx.Value(contextKey{}).(*requestLogContext); ok && rlc.logger != nil {
		return rlc.logger
	}
	return slog.Default()
}

// ContextWithLogAttrs records attributes that will be included in the request completion log.
// It is a no-op if ctx was not created by the RequestLogging middleware.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	rlc, ok := ctx.Value(contextKey{}).(*requestLogContext)
	if !ok {
		return
	}
	rlc.mu.Lock()
	defer rlc.mu.Unlock()
	rlc.attrs = append(rlc.attrs, attrs...)
}

func contextLogAttrs(ctx context.Context) []slog.Attr {
	rlc, ok := ctx.Value(contextKey{}).(*requestLogContext)
	if !ok {
		return nil
	}
	rlc.mu.Lock()
	defer rlc.mu.Unlock()
	return append([]slog.Attr(nil), rlc.attrs...)
}

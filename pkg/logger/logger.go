// Package logger carries a zap logger through context.Context.
//
// Setup installs the process default; code that never calls it (library
// callers, most tests) gets a no-op logger instead of a nil one. Scans and
// probes attach their identifiers with WithFields so every line they emit can
// be correlated.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects human-readable console output at debug level.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment selects JSON output at info level.
	ProductionEnvironment = "production"
)

var defaultLogger atomic.Pointer[zap.Logger] //nolint: gochecknoglobals

// Option tweaks the zap config built by Setup.
type Option func(*zap.Config) error

// WithLevel overrides the environment's default level. An empty level keeps it.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) error {
		if level == "" {
			return nil
		}
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return fmt.Errorf("could not parse log level %q: %w", level, err)
		}
		cfg.Level = lvl

		return nil
	}
}

// Setup builds the default logger for environment and points the process-wide
// slog default at the same core, so libraries logging through log/slog share
// the sink. Invalid options leave the previous default in place.
func Setup(environment string, opts ...Option) error {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defaultLogger.Store(l)
	slog.SetDefault(Slog(context.Background()))

	return nil
}

// Sync flushes the default logger. Errors from syncing stderr are ignored.
func Sync() {
	if l := defaultLogger.Load(); l != nil {
		_ = l.Sync()
	}
}

// Slog returns a *slog.Logger backed by the zap core of the logger in ctx.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

type key struct{}

// Get returns the logger stored in ctx, then the default set by Setup, then a
// no-op logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}

	return zap.NewNop()
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a copy of ctx whose logger has fields attached.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Named returns a copy of ctx whose logger has name appended to its name.
func Named(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, Get(ctx).Named(name))
}

// IsDebug reports whether debug entries would be written.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}

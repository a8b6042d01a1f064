package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"webroulette/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		opts        []logger.Option
		debug       bool
		wantErr     bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production", environment: logger.ProductionEnvironment, debug: false},
		{
			name:        "production at debug",
			environment: logger.ProductionEnvironment,
			opts:        []logger.Option{logger.WithLevel("debug")},
			debug:       true,
		},
		{
			name:        "development at warn",
			environment: logger.DevelopmentEnvironment,
			opts:        []logger.Option{logger.WithLevel("warn")},
			debug:       false,
		},
		{
			name:        "empty level keeps default",
			environment: logger.DevelopmentEnvironment,
			opts:        []logger.Option{logger.WithLevel("")},
			debug:       true,
		},
		{
			name:        "bad level",
			environment: logger.DevelopmentEnvironment,
			opts:        []logger.Option{logger.WithLevel("loud")},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGet_FromContext(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("scanID", "abc"))
	ctx = logger.Named(ctx, "scan")
	logger.Info(ctx, "found", zap.String("address", "1.2.3.4"))
	logger.Debug(ctx, "rejected")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "found", entries[0].Message)
	require.Equal(t, "scan", entries[0].LoggerName)
	require.Equal(t, map[string]any{"scanID": "abc", "address": "1.2.3.4"}, entries[0].ContextMap())
	require.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestIsDebug(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	require.False(t, logger.IsDebug(ctx))

	core, _ = observer.New(zapcore.DebugLevel)
	ctx = logger.WithLogger(context.Background(), zap.New(core))
	require.True(t, logger.IsDebug(ctx))
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	var levels []zapcore.Level
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestSlog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("slog message", "key", "value")

	entries := logs.FilterMessage("slog message").All()
	require.Len(t, entries, 1)
	require.Equal(t, "value", entries[0].ContextMap()["key"])
}

func TestSetup_RoutesSlogDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))
	t.Cleanup(logger.Sync)

	require.NotPanics(t, func() {
		slog.Default().Debug("routed through zap", "n", 1)
	})
}

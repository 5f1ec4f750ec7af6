package logger_test

import (
	"cardvalidator/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production", environment: logger.ProductionEnvironment, debug: false},
		{name: "production with debug override", environment: logger.ProductionEnvironment, level: "debug", debug: true},
		{name: "development with warn override", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
		{name: "unknown level ignored", environment: logger.DevelopmentEnvironment, level: "loud", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, logger.WithLevel(tt.level))
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestWithLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
	require.NotEqual(t, custom, logger.Get(ctx))
}

func TestWithFieldsAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("session", "abc"))
	ctx = logger.Named(ctx, "validation")
	logger.Info(ctx, "input event", zap.String("input", "numberText"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "validation", entries[0].LoggerName)
	require.Equal(t, "input event", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc", fields["session"])
	require.Equal(t, "numberText", fields["input"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

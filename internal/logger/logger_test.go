package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got, s)
	}

	_, ok := ParseLogLevel("trace")
	require.False(t, ok)
}

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithKV_AttachesFields checks that fields added to the context reach every record.
func TestWithKV_AttachesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "rainy")
	ctx = WithKV(ctx, "repository", "rain-ml")

	InfoKV(ctx, "Synced", "revision", "abc")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "rainy", entries[0].LoggerName)
	require.Equal(t, "rain-ml", entries[0].ContextMap()["repository"])
	require.Equal(t, "abc", entries[0].ContextMap()["revision"])
}

// TestWithLevelContext_RaisesVerbosity verifies that a scoped level lets debug records through an info core.
func TestWithLevelContext_RaisesVerbosity(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	Debug(ctx, "hidden")
	require.Zero(t, logs.Len())

	Debug(WithLevelContext(ctx, zapcore.DebugLevel), "visible")
	require.Equal(t, 1, logs.Len())

	WarnKV(WithLevelContext(ctx, zapcore.ErrorLevel), "suppressed")
	require.Equal(t, 1, logs.Len())
}

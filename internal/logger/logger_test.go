package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"dpanic": zapcore.DPanicLevel,
		"panic":  zapcore.PanicLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("loud")
	require.False(t, ok)
	require.Equal(t, zapcore.WarnLevel, got)
}

// TestContextLogger checks that named loggers with fields travel in the context.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), New(zapcore.DebugLevel, zapcore.AddSync(&buf)))
	ctx = WithName(ctx, "probe")
	ctx = WithKV(ctx, "source", "fixed")

	InfoKV(ctx, "Reported version", "version", "1.2.6")

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "probe")
	require.Contains(t, out, "Reported version")
	require.Contains(t, out, `"source": "fixed"`)
	require.Contains(t, out, `"version": "1.2.6"`)
}

// TestFromContextFallsBack ensures a bare context yields the global logger.
func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

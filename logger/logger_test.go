package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-acquire/tests"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("text output with subsystem", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := CreateHandler(Options{
			Subsystem: "acquire",
			MinLevel:  slog.LevelDebug,
			Output:    &buf,
		})

		slog.New(handler).Debug("hello", "k", "v")

		output := buf.String()
		assert.Contains(t, output, "hello")
		assert.Contains(t, output, "subsystem=acquire")
		assert.Contains(t, output, "k=v")
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := CreateHandler(Options{
			JSON:     true,
			MinLevel: slog.LevelInfo,
			Output:   &buf,
		})

		slog.New(handler).Info("hello")

		assert.True(t, strings.HasPrefix(buf.String(), "{"))
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := CreateHandler(Options{
			MinLevel: slog.LevelWarn,
			Output:   &buf,
		})

		logger := slog.New(handler)
		logger.Info("dropped")
		logger.Warn("kept")

		output := buf.String()
		assert.NotContains(t, output, "dropped")
		assert.Contains(t, output, "kept")
	})
}

// Set/Get are process-global, so this test must not run in parallel with
// anything else that swaps the logger.
func TestSetAndGet(t *testing.T) { //nolint:paralleltest
	original := Get()
	defer Set(original)

	captured := slogt.New(t)
	Set(captured)

	assert.Same(t, captured, Get())

	ctx := tests.GetUniqueContext(t)

	info, ok := tests.GetTestInfo(ctx)
	require.True(t, ok)

	Debug(ctx, "debug message", "test_id", info.Id)
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")

	Set(nil)
	assert.NotNil(t, Get(), "nil restores the default logger")
}

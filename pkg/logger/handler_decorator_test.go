package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

type runKey struct{}

func runIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), runIDExtractor, nil)
		ctx := context.WithValue(context.Background(), runKey{}, "run-1")

		slog.New(h).InfoContext(ctx, "with run")
		slog.New(h).InfoContext(context.Background(), "without run")

		records := decodeLines(t, &buf)
		require.Len(t, records, 2)
		assert.Equal(t, "run-1", records[0]["run_id"])
		assert.NotContains(t, records[1], "run_id")
	})

	t.Run("explicit attribute wins over context", func(t *testing.T) {
		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), runIDExtractor)
		ctx := context.WithValue(context.Background(), runKey{}, "from-context")

		slog.New(h).InfoContext(ctx, "explicit", logger.RunID("explicit"))

		assert.Equal(t, 1, strings.Count(buf.String(), `"run_id"`))
		assert.Equal(t, "explicit", decodeLines(t, &buf)[0]["run_id"])
	})

	t.Run("empty attributes are skipped", func(t *testing.T) {
		var buf bytes.Buffer
		empty := func(context.Context) (slog.Attr, bool) { return logger.RequestID(nil), true }
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), empty)

		slog.New(h).Info("no request")

		assert.NotContains(t, decodeLines(t, &buf)[0], "request_id")
	})

	t.Run("keeps extractors across WithAttrs and WithGroup", func(t *testing.T) {
		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), runIDExtractor)
		ctx := context.WithValue(context.Background(), runKey{}, "run-2")

		slog.New(h).With(logger.Component("engine")).WithGroup("spec").InfoContext(ctx, "grouped", slog.Int("index", 0))

		rec := decodeLines(t, &buf)[0]
		assert.Equal(t, "engine", rec["component"])
		group, ok := rec["spec"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "run-2", group["run_id"])
		assert.EqualValues(t, 0, group["index"])
	})
}

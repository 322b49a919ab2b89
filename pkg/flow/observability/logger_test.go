package observability

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	mu      sync.Mutex
	records []capturedRecord
}

type capturedRecord struct {
	level slog.Level
	msg   string
	attrs map[string]any
}

func newTestHandler() *testHandler {
	return &testHandler{}
}

func (h *testHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, capturedRecord{level: r.Level, msg: r.Message, attrs: attrs})
	return nil
}

func (h *testHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *testHandler) WithGroup(string) slog.Handler      { return h }

// last returns the most recent captured record.
func (h *testHandler) last(t *testing.T) capturedRecord {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.records)
	return h.records[len(h.records)-1]
}

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// TestLogRunStart tests run start logging fields.
func TestLogRunStart(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogRunStart(logger, "run-1", 3, 2)

	rec := h.last(t)
	assert.Equal(t, slog.LevelInfo, rec.level)
	assert.Equal(t, "flow run starting", rec.msg)
	assert.Equal(t, "run-1", rec.attrs["run_id"])
	assert.Equal(t, int64(3), rec.attrs["nodes"])
	assert.Equal(t, int64(2), rec.attrs["edges"])
}

// TestLogRunOutcomes tests the three run-level outcome logs.
func TestLogRunOutcomes(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogRunComplete(logger, "run-1", 12.5, 3)
	rec := h.last(t)
	assert.Equal(t, slog.LevelInfo, rec.level)
	assert.Equal(t, "flow run completed", rec.msg)
	assert.Equal(t, 12.5, rec.attrs["duration_ms"])

	LogRunFailed(logger, "run-1", 8.0, 2)
	rec = h.last(t)
	assert.Equal(t, slog.LevelWarn, rec.level)
	assert.Equal(t, int64(2), rec.attrs["failed_nodes"])

	LogRunError(logger, "run-1", errors.New("cycle detected"), 1.0)
	rec = h.last(t)
	assert.Equal(t, slog.LevelError, rec.level)
	assert.Equal(t, "cycle detected", rec.attrs["error"])
}

// TestLogNodeLifecycle tests the per-node log helpers.
func TestLogNodeLifecycle(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogNodeStart(logger, "n1", "math_operation")
	rec := h.last(t)
	assert.Equal(t, slog.LevelDebug, rec.level)
	assert.Equal(t, "math_operation", rec.attrs["node_type"])

	LogNodeComplete(logger, "n1", 3.0)
	rec = h.last(t)
	assert.Equal(t, slog.LevelDebug, rec.level)
	assert.Equal(t, "node completed", rec.msg)

	LogNodeError(logger, "n1", errors.New("division by zero"))
	rec = h.last(t)
	assert.Equal(t, slog.LevelError, rec.level)
	assert.Equal(t, "division by zero", rec.attrs["error"])

	LogNodeSkipped(logger, "n2", "n1")
	rec = h.last(t)
	assert.Equal(t, slog.LevelWarn, rec.level)
	assert.Equal(t, "n1", rec.attrs["failed_upstream"])
}

// TestLogArchive tests the history archive log helpers.
func TestLogArchive(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogReportArchived(logger, "run-1", 512)
	rec := h.last(t)
	assert.Equal(t, slog.LevelDebug, rec.level)
	assert.Equal(t, int64(512), rec.attrs["size_bytes"])

	LogArchiveError(logger, "run-1", "save", errors.New("disk full"))
	rec = h.last(t)
	assert.Equal(t, slog.LevelWarn, rec.level)
	assert.Equal(t, "save", rec.attrs["operation"])
}

// TestLogHelpers_NilLogger tests that every helper tolerates a nil logger.
func TestLogHelpers_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogRunStart(nil, "r", 0, 0)
		LogRunComplete(nil, "r", 0, 0)
		LogRunFailed(nil, "r", 0, 0)
		LogRunError(nil, "r", errors.New("x"), 0)
		LogNodeStart(nil, "n", "t")
		LogNodeComplete(nil, "n", 0)
		LogNodeError(nil, "n", errors.New("x"))
		LogNodeSkipped(nil, "n", "m")
		LogReportArchived(nil, "r", 0)
		LogArchiveError(nil, "r", "op", errors.New("x"))
	})
}

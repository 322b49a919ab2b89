package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that discards all measurements.
// Used as the default when metrics are not enabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordNodeExecution(ctx context.Context, nodeID string, duration time.Duration, err error) {
}
func (NoopMetrics) RecordNodeSkip(ctx context.Context, nodeID string)                   {}
func (NoopMetrics) RecordRun(ctx context.Context, success bool, duration time.Duration) {}
func (NoopMetrics) RecordReportArchive(ctx context.Context, sizeBytes int64)            {}

// NoopSpanManager is a SpanManager that produces non-recording spans.
// Used as the default when tracing is not enabled.
type NoopSpanManager struct{}

var noopTracer = noop.NewTracerProvider().Tracer("cortex")

func (NoopSpanManager) StartRunSpan(ctx context.Context, runID string) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, "cortex.run")
}

func (NoopSpanManager) StartNodeSpan(ctx context.Context, nodeID, nodeType string) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, "cortex.node."+nodeID)
}

func (NoopSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span != nil {
		span.End()
	}
}

func (NoopSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {}

var (
	_ MetricsRecorder = NoopMetrics{}
	_ SpanManager     = NoopSpanManager{}
)

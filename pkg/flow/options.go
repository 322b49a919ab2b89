package flow

import (
	"log/slog"

	"github.com/aetherloom/cortex/pkg/flow/event"
	"github.com/aetherloom/cortex/pkg/flow/history"
	"github.com/aetherloom/cortex/pkg/flow/observability"
)

// runConfig holds configuration for one Execute call.
type runConfig struct {
	runID          string
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
	hook           StatusFunc
	bus            *event.Bus
	archive        history.Store
}

// defaultRunConfig returns the default execution configuration: no-op
// observability, no hook, no archive.
func defaultRunConfig() runConfig {
	return runConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// RunOption configures execution behavior.
type RunOption func(*runConfig)

// WithRunID sets the run identifier used for logging, tracing, status
// events, and history archiving. A UUID is generated when not set.
func WithRunID(id string) RunOption {
	return func(c *runConfig) {
		c.runID = id
	}
}

// WithLogger sets the structured logger for run and node lifecycle logs.
// Without it the run is silent.
func WithLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithStatusHook registers a callback for node status transitions
// (idle/running/success/error). The hook is invoked synchronously between
// node executions and must not block.
func WithStatusHook(fn StatusFunc) RunOption {
	return func(c *runConfig) {
		c.hook = fn
	}
}

// WithStatusBus publishes node status transitions to the given bus,
// decoupling real-time consumers from the engine.
func WithStatusBus(bus *event.Bus) RunOption {
	return func(c *runConfig) {
		c.bus = bus
	}
}

// WithHistory archives the marshaled report to the given store when the
// run finishes. Archive failures are logged and never fail the run.
func WithHistory(store history.Store) RunOption {
	return func(c *runConfig) {
		c.archive = store
	}
}

// WithMetrics records run and node metrics through OpenTelemetry.
// Configure the global meter provider before enabling.
func WithMetrics() RunOption {
	return func(c *runConfig) {
		c.metrics = observability.NewMetricsRecorder()
	}
}

// WithTracing emits a run span with per-node child spans through
// OpenTelemetry. Configure the global tracer provider before enabling.
func WithTracing() RunOption {
	return func(c *runConfig) {
		c.spans = observability.NewSpanManager()
		c.tracingEnabled = true
	}
}

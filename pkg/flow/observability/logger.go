// Package observability provides structured logging, metrics, and
// distributed tracing for flow execution.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// LogRunStart logs the start of a flow run.
func LogRunStart(logger *slog.Logger, runID string, nodeCount, edgeCount int) {
	if logger == nil {
		return
	}
	logger.Info("flow run starting",
		slog.String("run_id", runID),
		slog.Int("nodes", nodeCount),
		slog.Int("edges", edgeCount),
	)
}

// LogRunComplete logs a fully successful flow run.
func LogRunComplete(logger *slog.Logger, runID string, durationMs float64, nodeCount int) {
	if logger == nil {
		return
	}
	logger.Info("flow run completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("nodes_executed", nodeCount),
	)
}

// LogRunFailed logs a run that finished with node-scoped failures.
func LogRunFailed(logger *slog.Logger, runID string, durationMs float64, failedNodes int) {
	if logger == nil {
		return
	}
	logger.Warn("flow run finished with failures",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("failed_nodes", failedNodes),
	)
}

// LogRunError logs a whole-run failure: structure, cycle, or cancellation.
func LogRunError(logger *slog.Logger, runID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("flow run aborted",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogNodeStart logs node execution start.
func LogNodeStart(logger *slog.Logger, nodeID, nodeType string) {
	if logger == nil {
		return
	}
	logger.Debug("node starting",
		slog.String("node_id", nodeID),
		slog.String("node_type", nodeType),
	)
}

// LogNodeComplete logs successful node completion.
func LogNodeComplete(logger *slog.Logger, nodeID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("node completed",
		slog.String("node_id", nodeID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogNodeError logs node execution error.
func LogNodeError(logger *slog.Logger, nodeID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("node failed",
		slog.String("node_id", nodeID),
		slog.String("error", err.Error()),
	)
}

// LogNodeSkipped logs a node skipped due to an upstream failure.
func LogNodeSkipped(logger *slog.Logger, nodeID, failedSource string) {
	if logger == nil {
		return
	}
	logger.Warn("node skipped",
		slog.String("node_id", nodeID),
		slog.String("failed_upstream", failedSource),
	)
}

// LogReportArchived logs a report archived to the history store.
func LogReportArchived(logger *slog.Logger, runID string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("report archived",
		slog.String("run_id", runID),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogArchiveError logs a report archive failure (non-fatal).
func LogArchiveError(logger *slog.Logger, runID string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("report archive failed",
		slog.String("run_id", runID),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

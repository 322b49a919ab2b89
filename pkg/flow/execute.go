package flow

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/aetherloom/cortex/pkg/flow/block"
	"github.com/aetherloom/cortex/pkg/flow/event"
	"github.com/aetherloom/cortex/pkg/flow/observability"
)

// Execute runs the graph and returns the per-node report.
//
// Execution flow:
//  1. Audit the graph structure; a StructureError rejects the whole run.
//  2. Compute the topological order; a CycleError rejects the whole run.
//  3. Walk the order sequentially. For each node, resolve its inputs from
//     already-recorded upstream results; skip the node with an
//     UpstreamError if any dependency failed, otherwise run its block and
//     record the outcome.
//
// Block-level failures never abort the run: independent branches keep
// executing and every attempted node ends up in the report. A non-nil
// error is returned only for whole-run failures (structure, cycle,
// cancellation); on cancellation the partial report is returned alongside
// the CancellationError.
//
// Execute holds no state between calls. Concurrent calls with distinct
// graphs need no coordination.
func Execute(ctx context.Context, g *Graph, opts ...RunOption) (report *Report, runErr error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	runID := cfg.runID
	if runID == "" {
		runID = uuid.New().String()
	}

	startTime := time.Now()
	observability.LogRunStart(cfg.logger, runID, g.NodeCount(), g.EdgeCount())

	execCtx := ctx
	var runSpan trace.Span
	if cfg.tracingEnabled {
		execCtx, runSpan = cfg.spans.StartRunSpan(ctx, runID)
		defer func() {
			cfg.spans.EndSpanWithError(runSpan, runErr)
		}()
	}

	if err := g.Validate(); err != nil {
		observability.LogRunError(cfg.logger, runID, err, msSince(startTime))
		cfg.metrics.RecordRun(ctx, false, time.Since(startTime))
		return nil, err
	}
	order, err := g.TopologicalOrder()
	if err != nil {
		observability.LogRunError(cfg.logger, runID, err, msSince(startTime))
		cfg.metrics.RecordRun(ctx, false, time.Since(startTime))
		return nil, err
	}

	report = &Report{
		Status: RunSucceeded,
		Nodes:  make(map[string]NodeResult, len(order)),
	}
	transition := func(nodeID string, from, to Status, nodeErr error) {
		change := StatusChange{RunID: runID, NodeID: nodeID, From: from, To: to, Err: nodeErr}
		if cfg.hook != nil {
			cfg.hook(change)
		}
		if cfg.bus != nil {
			cfg.bus.Publish(event.NewStatusEvent(runID, nodeID, string(to), nodeErr))
		}
	}

	for i, id := range order {
		// Cancellation is honored only between node executions, so an
		// abandoned run never records a half-finished node.
		select {
		case <-ctx.Done():
			cancelErr := &CancellationError{NodeID: id, Completed: i, Cause: ctx.Err()}
			observability.LogRunError(cfg.logger, runID, cancelErr, msSince(startTime))
			cfg.metrics.RecordRun(ctx, false, time.Since(startTime))
			return report, cancelErr
		default:
		}

		node, _ := g.Node(id)

		inputs, failedSource := g.resolveInputs(id, report)
		if failedSource != "" {
			skipErr := &UpstreamError{NodeID: id, Source: failedSource}
			report.Nodes[id] = NodeResult{Status: StatusError, Error: skipErr.Error()}
			report.Status = RunFailed
			transition(id, StatusIdle, StatusError, skipErr)
			observability.LogNodeSkipped(cfg.logger, id, failedSource)
			cfg.metrics.RecordNodeSkip(execCtx, id)
			continue
		}

		transition(id, StatusIdle, StatusRunning, nil)
		observability.LogNodeStart(cfg.logger, id, node.Type)

		nodeCtx := execCtx
		var nodeSpan trace.Span
		if cfg.tracingEnabled {
			nodeCtx, nodeSpan = cfg.spans.StartNodeSpan(execCtx, id, node.Type)
		}

		nodeStart := time.Now()
		result := runBlock(nodeCtx, node, inputs)
		nodeDuration := time.Since(nodeStart)

		cfg.metrics.RecordNodeExecution(nodeCtx, id, nodeDuration, result.Err)
		if cfg.tracingEnabled {
			cfg.spans.EndSpanWithError(nodeSpan, result.Err)
		}

		if result.Err != nil {
			report.Nodes[id] = NodeResult{Status: StatusError, Error: result.Err.Error()}
			report.Status = RunFailed
			transition(id, StatusRunning, StatusError, result.Err)
			observability.LogNodeError(cfg.logger, id, result.Err)
			continue
		}

		report.Nodes[id] = NodeResult{Status: StatusSuccess, Value: result.Value}
		transition(id, StatusRunning, StatusSuccess, nil)
		observability.LogNodeComplete(cfg.logger, id, float64(nodeDuration.Milliseconds()))
	}

	duration := time.Since(startTime)
	cfg.metrics.RecordRun(ctx, report.Status == RunSucceeded, duration)
	if report.Status == RunSucceeded {
		observability.LogRunComplete(cfg.logger, runID, float64(duration.Milliseconds()), len(order))
	} else {
		observability.LogRunFailed(cfg.logger, runID, float64(duration.Milliseconds()), report.failedCount())
	}

	archiveReport(ctx, &cfg, runID, report)
	return report, nil
}

// resolveInputs collects the node's input values keyed by target handle.
// It returns the first failing upstream node id, if any; in that case the
// node must be skipped rather than run with a partial input set.
func (g *Graph) resolveInputs(nodeID string, report *Report) (map[string]any, string) {
	incoming := g.Incoming(nodeID)
	inputs := make(map[string]any, len(incoming))
	for _, e := range incoming {
		upstream, ok := report.Nodes[e.Source]
		if !ok || upstream.Status != StatusSuccess {
			return nil, e.Source
		}
		inputs[e.TargetHandle] = upstream.Value
	}
	return inputs, ""
}

// runBlock instantiates and runs the node's block with panic containment.
// A panicking block is reported as that node's error, never as a crash.
func runBlock(ctx context.Context, node Node, inputs map[string]any) (result block.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = block.Result{Err: &PanicError{
				NodeID: node.ID,
				Value:  r,
				Stack:  string(debug.Stack()),
			}}
		}
	}()

	b, err := block.New(node.Type, node.ID, blockConfig(node))
	if err != nil {
		return block.Result{Err: &BlockError{NodeID: node.ID, Err: err}}
	}
	result = b.Run(ctx, inputs)
	if result.Err != nil {
		result.Err = &BlockError{NodeID: node.ID, Err: result.Err}
	}
	return result
}

// blockConfig merges the node's current data value into its config under
// the "value" key, matching how the editor stores scalar input values. An
// explicit config value wins.
func blockConfig(node Node) map[string]any {
	if node.Data.Value == nil {
		return node.Data.Config
	}
	if _, ok := node.Data.Config["value"]; ok {
		return node.Data.Config
	}
	merged := make(map[string]any, len(node.Data.Config)+1)
	for k, v := range node.Data.Config {
		merged[k] = v
	}
	merged["value"] = node.Data.Value
	return merged
}

// archiveReport saves the marshaled report to the configured history
// store. Archiving is best-effort: failures are logged, never fatal.
func archiveReport(ctx context.Context, cfg *runConfig, runID string, report *Report) {
	if cfg.archive == nil {
		return
	}
	data, err := report.Marshal()
	if err != nil {
		observability.LogArchiveError(cfg.logger, runID, "marshal", err)
		return
	}
	if err := cfg.archive.Save(runID, data); err != nil {
		observability.LogArchiveError(cfg.logger, runID, "save", err)
		return
	}
	observability.LogReportArchived(cfg.logger, runID, len(data))
	cfg.metrics.RecordReportArchive(ctx, int64(len(data)))
}

// failedCount returns the number of nodes recorded with status error.
func (r *Report) failedCount() int {
	n := 0
	for _, res := range r.Nodes {
		if res.Status == StatusError {
			n++
		}
	}
	return n
}

// msSince returns the elapsed milliseconds since start.
func msSince(start time.Time) float64 {
	return float64(time.Since(start).Milliseconds())
}

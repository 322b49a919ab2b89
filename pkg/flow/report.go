package flow

import "encoding/json"

// Status is the lifecycle state of a node within one run.
// Valid transitions: idle -> running -> {success, error}, plus the direct
// idle -> error transition for nodes skipped due to an upstream failure.
// A node is attempted at most once per run.
type Status string

// Node statuses.
const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Overall run statuses. A run succeeds only if every node succeeded.
const (
	RunSucceeded = "success"
	RunFailed    = "failed"
)

// NodeResult is the recorded outcome of one node: a value on success, an
// error message otherwise. Nodes omitted by cancellation never appear.
type NodeResult struct {
	Status Status `json:"status"`
	Value  any    `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report is the aggregate, per-node outcome of one full run. Failures in
// one branch never erase results computed in independent branches; every
// attempted node's final status is present.
//
// Reports carry no run identity or timing, so executing an identical graph
// twice with identical inputs yields byte-identical marshaled reports.
type Report struct {
	Status string                `json:"status"`
	Nodes  map[string]NodeResult `json:"nodes"`
}

// Marshal returns the canonical JSON encoding of the report. Map keys are
// emitted in sorted order, keeping the encoding deterministic.
func (r *Report) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// StatusChange describes one node state transition during a run. The
// engine delivers these through the optional status hook and status bus so
// a streaming collaborator can forward them to a UI without the engine
// depending on any transport.
type StatusChange struct {
	RunID  string
	NodeID string
	From   Status
	To     Status
	Err    error
}

// StatusFunc observes node state transitions. It is invoked synchronously
// between node executions and must not block.
type StatusFunc func(StatusChange)

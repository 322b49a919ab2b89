package flow

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction and structural validation.
var (
	// ErrNilGraph indicates Execute was called with a nil graph.
	ErrNilGraph = errors.New("graph cannot be nil")

	// ErrEmptyNodeID indicates a node was added without an identifier.
	ErrEmptyNodeID = errors.New("node id cannot be empty")

	// ErrDuplicateNode indicates a node id is already present in the graph.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrUnknownType indicates a node type tag has no registered handle shape.
	ErrUnknownType = errors.New("unknown node type")

	// ErrDuplicateEdge indicates an edge id is already present in the graph.
	ErrDuplicateEdge = errors.New("duplicate edge id")

	// ErrSelfLoop indicates an edge connects a node to itself.
	ErrSelfLoop = errors.New("edge connects a node to itself")

	// ErrNodeNotFound indicates an edge references a node id absent from the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrHandleNotFound indicates an edge references a handle the node type does not declare.
	ErrHandleNotFound = errors.New("handle not declared by node type")

	// ErrInputTaken indicates a second edge targets an already-written input handle.
	ErrInputTaken = errors.New("target handle already has a writer")

	// ErrCycle indicates a directed cycle, either closed by a proposed edge
	// or detected among an existing graph's edges.
	ErrCycle = errors.New("cycle detected")
)

// StructureError reports a structural invariant violation: a dangling node
// reference, a duplicate writer to one input handle, or a malformed handle
// reference. Structure errors reject the whole run before any node executes.
type StructureError struct {
	// EdgeID identifies the offending edge, when the violation is edge-scoped.
	EdgeID string
	// NodeID identifies the offending node, when the violation is node-scoped.
	NodeID string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	switch {
	case e.EdgeID != "":
		return fmt.Sprintf("edge %s: %v", e.EdgeID, e.Err)
	case e.NodeID != "":
		return fmt.Sprintf("node %s: %v", e.NodeID, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StructureError) Unwrap() error {
	return e.Err
}

// CycleError reports a directed cycle. The validator raises it per proposed
// edge during editing; the sorter raises it per run for externally supplied
// graphs. In both cases nothing executes.
type CycleError struct {
	// EdgeID is the proposed edge that would close the cycle (validator path).
	EdgeID string
	// Remaining are the node ids left unordered by the sorter (sorter path),
	// in insertion order. Empty on the validator path.
	Remaining []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.EdgeID != "" {
		return fmt.Sprintf("edge %s would close a cycle", e.EdgeID)
	}
	return fmt.Sprintf("graph contains a cycle among nodes [%s]", strings.Join(e.Remaining, ", "))
}

// Unwrap returns ErrCycle for errors.Is support.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// BlockError wraps a block computation failure. It is scoped to the node
// that failed; sibling branches keep executing.
type BlockError struct {
	// NodeID is the node whose block failed.
	NodeID string
	// Err is the underlying error from the block.
	Err error
}

// Error implements the error interface.
func (e *BlockError) Error() string {
	return fmt.Sprintf("node %s: %v", e.NodeID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BlockError) Unwrap() error {
	return e.Err
}

// UpstreamError marks a node that was skipped because a required input's
// source failed or was itself skipped. The node's block is never invoked.
type UpstreamError struct {
	// NodeID is the skipped node.
	NodeID string
	// Source is the upstream node that did not produce a value.
	Source string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("node %s skipped: upstream node %s did not produce a value", e.NodeID, e.Source)
}

// PanicError captures a panic raised inside a block, including the stack
// trace at the point of panic. It is recorded as that node's error.
type PanicError struct {
	// NodeID is the node whose block panicked.
	NodeID string
	// Value is the value passed to panic().
	Value any
	// Stack is the stack trace captured during recovery.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("node %s panicked: %v", e.NodeID, e.Value)
}

// CancellationError reports a run abandoned between node executions.
// Nodes already completed keep their results in the report; the rest are
// omitted. No node is ever interrupted mid-execution.
type CancellationError struct {
	// NodeID is the node that was about to execute.
	NodeID string
	// Completed is the number of nodes recorded before cancellation.
	Completed int
	// Cause is the underlying cancellation cause.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("cancelled before node %s: %v", e.NodeID, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

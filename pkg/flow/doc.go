/*
Package flow provides the flow-graph model and execution engine behind the
Cortex editor: users compose a directed graph of typed nodes connected by
handle-to-handle edges, and the engine computes a result by propagating
values through the graph in dependency order.

# Overview

The package is split into three concerns:

  - The graph model: Node, Edge, and Graph, a builder that maintains the
    structural invariants (no dangling references, one writer per input
    handle, no cycles, declared handles only) incrementally on every edge
    addition.
  - The topological sorter: a deterministic Kahn's-algorithm ordering used
    as the authoritative cycle check on every run.
  - The execution engine: Execute walks the sorted nodes, resolves each
    node's inputs from already-computed upstream results, invokes the block
    bound to the node's type tag, and assembles a Report with a per-node
    outcome.

Executable behavior lives in the block subpackage: each node type tag maps
to a Block through an open registry, so new node types register a block and
a handle shape without any engine changes.

# Basic Usage

Build a graph, then execute it:

	g := flow.NewGraph()
	g.AddNode(flow.Node{ID: "n1", Type: block.TypeScalarNumberInput,
	    Data: flow.NodeData{Config: map[string]any{"value": 10}}})
	g.AddNode(flow.Node{ID: "n2", Type: block.TypeScalarNumberInput,
	    Data: flow.NodeData{Config: map[string]any{"value": 5}}})
	g.AddNode(flow.Node{ID: "n3", Type: block.TypeMathOperation,
	    Data: flow.NodeData{Config: map[string]any{"operation": "add"}}})
	g.AddEdge(flow.Edge{Source: "n1", Target: "n3", TargetHandle: "a"})
	g.AddEdge(flow.Edge{Source: "n2", Target: "n3", TargetHandle: "b"})

	report, err := flow.Execute(context.Background(), g)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(report.Nodes["n3"].Value) // 15

Graphs also decode from JSON or YAML wire documents via ParseJSON,
ParseYAML, and LoadDocument.

# Failure Semantics

Structural and cycle errors are global: Execute returns the error and no
node runs. Block failures are node-scoped: the failing node and every node
that transitively depends on it are recorded with status "error", while
independent branches keep executing. Every node's final status is always
present in the report.

# Concurrency

The engine holds no state across runs. Each Execute call operates on its
own Graph value and produces its own Report, so concurrent callers need no
coordination. Graph itself is a single-goroutine builder; share only the
values you derive from it.
*/
package flow

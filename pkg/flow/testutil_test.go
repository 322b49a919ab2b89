package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aetherloom/cortex/pkg/flow/block"
)

// Graph-building helpers used across tests.

// textNode returns a scalar text input node with the given literal.
func textNode(id, value string) Node {
	return Node{ID: id, Type: block.TypeScalarTextInput, Data: NodeData{Value: value}}
}

// numberNode returns a scalar number input node with the given literal.
func numberNode(id string, value any) Node {
	return Node{ID: id, Type: block.TypeScalarNumberInput, Data: NodeData{Value: value}}
}

// mathNode returns a math operation node with the given operation.
func mathNode(id, op string) Node {
	return Node{ID: id, Type: block.TypeMathOperation, Data: NodeData{
		Config: map[string]any{"operation": op},
	}}
}

// joinNode returns a text join node with the given separator.
func joinNode(id, sep string) Node {
	return Node{ID: id, Type: block.TypeTextJoin, Data: NodeData{
		Config: map[string]any{"separator": sep},
	}}
}

// outputNode returns a number output node.
func outputNode(id string) Node {
	return Node{ID: id, Type: block.TypeNumberOutput, Data: NodeData{IsOutput: true}}
}

// textOutputNode returns a text output node.
func textOutputNode(id string) Node {
	return Node{ID: id, Type: block.TypeTextOutput, Data: NodeData{IsOutput: true}}
}

// mustGraph builds a graph from nodes and edges, failing the test on any
// construction error.
func mustGraph(t *testing.T, nodes []Node, edges []Edge) *Graph {
	t.Helper()
	g := NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n), "adding node %s", n.ID)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e), "adding edge %s->%s", e.Source, e.Target)
	}
	return g
}

// additionGraph builds the canonical three-node flow:
// n1 (10) -> n3.a, n2 (5) -> n3.b, n3 computes a + b.
func additionGraph(t *testing.T) *Graph {
	t.Helper()
	return mustGraph(t,
		[]Node{
			numberNode("n1", 10),
			numberNode("n2", 5),
			mathNode("n3", "add"),
		},
		[]Edge{
			{ID: "e1", Source: "n1", Target: "n3", SourceHandle: "out", TargetHandle: "a"},
			{ID: "e2", Source: "n2", Target: "n3", SourceHandle: "out", TargetHandle: "b"},
		},
	)
}

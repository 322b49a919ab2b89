// Package benchmarks measures graph construction and validation overhead.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/aetherloom/cortex/pkg/flow"
	"github.com/aetherloom/cortex/pkg/flow/block"
)

// nodeID formats a numeric node id.
func nodeID(i int) string {
	return fmt.Sprintf("n%d", i)
}

// buildChain builds a linear flow of n math nodes fed by one input.
func buildChain(n int) *flow.Graph {
	g := flow.NewGraph()
	if err := g.AddNode(flow.Node{ID: "src", Type: block.TypeScalarNumberInput, Data: flow.NodeData{Value: 1}}); err != nil {
		panic(err)
	}
	prev := "src"
	for i := 0; i < n; i++ {
		id := nodeID(i)
		if err := g.AddNode(flow.Node{ID: id, Type: block.TypeMathOperation, Data: flow.NodeData{
			Config: map[string]any{"operation": "add"},
		}}); err != nil {
			panic(err)
		}
		if err := g.AddEdge(flow.Edge{Source: prev, Target: id, TargetHandle: "a"}); err != nil {
			panic(err)
		}
		if err := g.AddEdge(flow.Edge{Source: "src", Target: id, TargetHandle: "b"}); err != nil {
			panic(err)
		}
		prev = id
	}
	return g
}

// BenchmarkNewGraph measures graph creation overhead.
func BenchmarkNewGraph(b *testing.B) {
	for i := 0; i < b.N; i++ {
		flow.NewGraph()
	}
}

// BenchmarkAddNode_100 measures adding 100 nodes.
func BenchmarkAddNode_100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := flow.NewGraph()
		for j := 0; j < 100; j++ {
			_ = g.AddNode(flow.Node{ID: nodeID(j), Type: block.TypeScalarNumberInput})
		}
	}
}

// BenchmarkBuildChain_50 measures building a 50-node chain with full
// per-edge validation.
func BenchmarkBuildChain_50(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildChain(50)
	}
}

// BenchmarkCanConnect_Deep measures the reachability query at the far end
// of a long chain, the worst case for the cycle probe.
func BenchmarkCanConnect_Deep(b *testing.B) {
	g := buildChain(200)
	back := flow.Edge{Source: nodeID(199), Target: nodeID(0), SourceHandle: "out", TargetHandle: "a"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.CanConnect(back) {
			b.Fatal("cycle-closing edge accepted")
		}
	}
}

// BenchmarkTopologicalOrder_200 measures sorting a 200-node chain.
func BenchmarkTopologicalOrder_200(b *testing.B) {
	g := buildChain(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.TopologicalOrder(); err != nil {
			b.Fatal(err)
		}
	}
}

package flow

import (
	"fmt"

	"github.com/google/uuid"
)

// NodeData carries the user-facing payload and configuration of a node.
// Canvas position and styling are UI metadata and never reach the engine.
type NodeData struct {
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Value    any            `json:"value,omitempty" yaml:"value,omitempty"`
	Config   map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
	IsOutput bool           `json:"is_output,omitempty" yaml:"is_output,omitempty"`
}

// Node is a unit of computation in the flow graph, identified by id and
// discriminated by its type tag.
type Node struct {
	ID   string   `json:"id" yaml:"id"`
	Type string   `json:"type" yaml:"type"`
	Data NodeData `json:"data" yaml:"data"`
}

// Edge is a directed dependency from one node's source handle to another
// node's target handle.
type Edge struct {
	ID           string `json:"id" yaml:"id"`
	Source       string `json:"source" yaml:"source"`
	Target       string `json:"target" yaml:"target"`
	SourceHandle string `json:"sourceHandle,omitempty" yaml:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty" yaml:"targetHandle,omitempty"`
}

// Graph is a mutable builder for flow graphs. It maintains the structural
// invariants incrementally: AddEdge rejects self-loops, dangling references,
// undeclared handles, second writers to one input handle, and edges that
// would close a cycle.
//
// Graph is NOT safe for concurrent mutation. The editing collaborator owns
// the live graph; the engine receives it as a per-call snapshot and never
// mutates it.
type Graph struct {
	nodes   map[string]Node
	order   []string // node ids in insertion order
	edges   []Edge
	edgeIDs map[string]bool
	writers map[string]string   // target node + handle -> writing edge id
	out     map[string][]string // source node -> target nodes, edge insertion order
	in      map[string][]Edge   // target node -> incoming edges, edge insertion order
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]Node),
		edgeIDs: make(map[string]bool),
		writers: make(map[string]string),
		out:     make(map[string][]string),
		in:      make(map[string][]Edge),
	}
}

// writerKey identifies one input slot: a (target node, target handle) pair.
func writerKey(target, handle string) string {
	return target + "\x00" + handle
}

// AddNode adds a node to the graph. The node's type tag must have a
// registered handle shape (see RegisterType).
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return &StructureError{Err: ErrEmptyNodeID}
	}
	if _, exists := g.nodes[n.ID]; exists {
		return &StructureError{NodeID: n.ID, Err: ErrDuplicateNode}
	}
	if _, ok := HandleShape(n.Type); !ok {
		return &StructureError{NodeID: n.ID, Err: fmt.Errorf("%w: %q", ErrUnknownType, n.Type)}
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge commits an edge after validating it against the connection
// invariants. An empty edge id is assigned a generated one. Empty handle
// ids are resolved to the node's sole handle when its shape declares
// exactly one in that direction.
func (g *Graph) AddEdge(e Edge) error {
	e, err := g.checkConnect(e)
	if err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if g.edgeIDs[e.ID] {
		return &StructureError{EdgeID: e.ID, Err: ErrDuplicateEdge}
	}

	g.edges = append(g.edges, e)
	g.edgeIDs[e.ID] = true
	g.writers[writerKey(e.Target, e.TargetHandle)] = e.ID
	g.out[e.Source] = append(g.out[e.Source], e.Target)
	g.in[e.Target] = append(g.in[e.Target], e)
	return nil
}

// Connect adds an edge between two nodes with a generated edge id. Handle
// ids may be empty when the endpoint declares exactly one handle in that
// direction.
func (g *Graph) Connect(source, sourceHandle, target, targetHandle string) error {
	return g.AddEdge(Edge{
		Source:       source,
		SourceHandle: sourceHandle,
		Target:       target,
		TargetHandle: targetHandle,
	})
}

// CanConnect reports whether the proposed edge would be accepted by
// AddEdge. It is a pure predicate: no mutation occurs, no I/O is performed,
// and it completes synchronously.
func (g *Graph) CanConnect(e Edge) bool {
	_, err := g.checkConnect(e)
	return err == nil
}

// checkConnect validates a proposed edge and returns it with empty handle
// ids resolved. The order of checks mirrors the editing flow: cheap local
// rejections first, the reachability query last.
func (g *Graph) checkConnect(e Edge) (Edge, error) {
	if e.Source == e.Target {
		return e, &StructureError{EdgeID: e.ID, Err: ErrSelfLoop}
	}
	src, ok := g.nodes[e.Source]
	if !ok {
		return e, &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: source %q", ErrNodeNotFound, e.Source)}
	}
	dst, ok := g.nodes[e.Target]
	if !ok {
		return e, &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: target %q", ErrNodeNotFound, e.Target)}
	}

	srcShape, _ := HandleShape(src.Type)
	dstShape, _ := HandleShape(dst.Type)
	if e.SourceHandle == "" && len(srcShape.Sources) == 1 {
		e.SourceHandle = srcShape.Sources[0]
	}
	if e.TargetHandle == "" && len(dstShape.Targets) == 1 {
		e.TargetHandle = dstShape.Targets[0]
	}
	if !srcShape.HasSource(e.SourceHandle) {
		return e, &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: source handle %q on type %q", ErrHandleNotFound, e.SourceHandle, src.Type)}
	}
	if !dstShape.HasTarget(e.TargetHandle) {
		return e, &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: target handle %q on type %q", ErrHandleNotFound, e.TargetHandle, dst.Type)}
	}

	if _, taken := g.writers[writerKey(e.Target, e.TargetHandle)]; taken {
		return e, &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: %s.%s", ErrInputTaken, e.Target, e.TargetHandle)}
	}

	// Adding source -> target closes a cycle iff source is already
	// reachable from target over the existing edges.
	if g.reachable(e.Target, e.Source) {
		return e, &CycleError{EdgeID: e.ID}
	}
	return e, nil
}

// reachable reports whether to can be reached from from by following edges
// forward. It is an iterative traversal over an explicit worklist with a
// visited set, so each node is visited at most once per query.
func (g *Graph) reachable(from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	worklist := []string{from}
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		for _, next := range g.out[current] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				worklist = append(worklist, next)
			}
		}
	}
	return false
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Incoming returns the edges targeting the given node, in insertion order.
// The engine uses this to resolve a node's inputs from upstream results.
func (g *Graph) Incoming(nodeID string) []Edge {
	return g.in[nodeID]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Validate audits the full edge set against the structural invariants:
// every endpoint exists, every handle is declared, and each input handle
// has at most one writer. Graphs built through AddNode/AddEdge hold these
// by construction; the engine still audits every graph it receives, since
// a caller may hand it a graph assembled elsewhere.
//
// Cycle detection is deliberately not repeated here: the topological
// sorter is the authoritative cycle check and runs on every execution.
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.edges))
	for _, e := range g.edges {
		src, ok := g.nodes[e.Source]
		if !ok {
			return &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: source %q", ErrNodeNotFound, e.Source)}
		}
		dst, ok := g.nodes[e.Target]
		if !ok {
			return &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: target %q", ErrNodeNotFound, e.Target)}
		}
		srcShape, _ := HandleShape(src.Type)
		dstShape, _ := HandleShape(dst.Type)
		if !srcShape.HasSource(e.SourceHandle) {
			return &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: source handle %q on type %q", ErrHandleNotFound, e.SourceHandle, src.Type)}
		}
		if !dstShape.HasTarget(e.TargetHandle) {
			return &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: target handle %q on type %q", ErrHandleNotFound, e.TargetHandle, dst.Type)}
		}
		key := writerKey(e.Target, e.TargetHandle)
		if seen[key] {
			return &StructureError{EdgeID: e.ID, Err: fmt.Errorf("%w: %s.%s", ErrInputTaken, e.Target, e.TargetHandle)}
		}
		seen[key] = true
	}
	return nil
}

package flow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the wire form of a flow graph: the sole input the engine
// accepts from transport collaborators.
type Document struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Graph builds a validated Graph from the document. Every node and edge
// passes through the same invariant checks as interactive editing, so a
// malformed or cyclic document is rejected here with the offending node or
// edge named.
func (d Document) Graph() (*Graph, error) {
	g := NewGraph()
	for _, n := range d.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Document returns the graph's wire form, with nodes and edges in
// insertion order.
func (g *Graph) Document() Document {
	return Document{Nodes: g.Nodes(), Edges: g.Edges()}
}

// ParseJSON decodes a {nodes, edges} JSON document into a validated Graph.
func ParseJSON(data []byte) (*Graph, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse flow document: %w", err)
	}
	return d.Graph()
}

// ParseYAML decodes a {nodes, edges} YAML document into a validated Graph.
func ParseYAML(data []byte) (*Graph, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse flow document: %w", err)
	}
	return d.Graph()
}

// LoadDocument reads a flow document from a file, auto-detecting the
// format by extension. Supported extensions: .json, .yaml, .yml
func LoadDocument(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flow document: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported flow document extension: %s", ext)
	}
}

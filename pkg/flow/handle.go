package flow

import (
	"github.com/aetherloom/cortex/pkg/flow/block"
	"github.com/aetherloom/cortex/pkg/flow/registry"
)

// HandleSpec declares the fixed set of connection points a node type
// exposes. Edges may only reference handle ids declared here.
type HandleSpec struct {
	// Targets are the input handles, written by incoming edges.
	Targets []string
	// Sources are the output handles, read by outgoing edges.
	Sources []string
}

// HasTarget returns true if id is a declared input handle.
func (s HandleSpec) HasTarget(id string) bool {
	for _, h := range s.Targets {
		if h == id {
			return true
		}
	}
	return false
}

// HasSource returns true if id is a declared output handle.
func (s HandleSpec) HasSource(id string) bool {
	for _, h := range s.Sources {
		if h == id {
			return true
		}
	}
	return false
}

// handleShapes maps node type tags to their fixed handle shapes.
var handleShapes = registry.New[string, HandleSpec]()

func init() {
	RegisterType(block.TypeScalarTextInput, HandleSpec{Sources: []string{"out"}})
	RegisterType(block.TypeScalarNumberInput, HandleSpec{Sources: []string{"out"}})
	RegisterType(block.TypeMathOperation, HandleSpec{Targets: []string{"a", "b"}, Sources: []string{"out"}})
	RegisterType(block.TypeTextJoin, HandleSpec{Targets: []string{"a", "b"}, Sources: []string{"out"}})
	RegisterType(block.TypeTextOutput, HandleSpec{Targets: []string{"in"}})
	RegisterType(block.TypeNumberOutput, HandleSpec{Targets: []string{"in"}})
}

// RegisterType declares the handle shape for a node type tag. Together with
// block.Register this is all that is needed to introduce a new node type;
// the engine never special-cases type tags.
func RegisterType(typeTag string, spec HandleSpec) {
	handleShapes.Register(typeTag, spec)
}

// HandleShape returns the handle shape declared for a type tag.
func HandleShape(typeTag string) (HandleSpec, bool) {
	return handleShapes.Get(typeTag)
}

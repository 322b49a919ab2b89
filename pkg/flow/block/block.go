package block

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aetherloom/cortex/pkg/flow/config"
	"github.com/aetherloom/cortex/pkg/flow/registry"
)

// Type tags for the built-in node types. The editing collaborator and the
// engine agree on this set; extending it requires registering a block and
// a handle shape, never an engine change.
const (
	TypeScalarTextInput   = "scalar_text_input"
	TypeScalarNumberInput = "scalar_number_input"
	TypeMathOperation     = "math_operation"
	TypeTextJoin          = "text_join"
	TypeTextOutput        = "text_output"
	TypeNumberOutput      = "number_output"
)

// Sentinel errors for block construction and execution.
var (
	// ErrUnknownBlock indicates no block factory is registered for a type tag.
	ErrUnknownBlock = errors.New("no block registered for type")

	// ErrMissingInput indicates a required input handle received no value.
	ErrMissingInput = errors.New("required input missing")

	// ErrNotANumber indicates an operand could not be used as a number.
	ErrNotANumber = errors.New("input is not numeric")

	// ErrNotText indicates an input could not be rendered as text.
	ErrNotText = errors.New("input is not a text scalar")

	// ErrDivideByZero indicates a division with a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrUnknownOperation indicates an unrecognized math operation config.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Result is the value-or-error outcome of running a block. Meta carries
// optional block-specific annotations (lengths, formatting, operand types)
// that reporting collaborators may surface; the engine ignores it.
type Result struct {
	Value any
	Err   error
	Meta  map[string]any
}

// Block is the uniform execution contract bound to a node's type tag.
// Run receives the node's resolved input values keyed by target handle id
// (empty for input nodes) and returns the computed outcome.
//
// Blocks must be pure with respect to the run: no state may survive
// between runs, and identical inputs must yield identical results.
type Block interface {
	Run(ctx context.Context, inputs map[string]any) Result
}

// Factory builds a block instance for one node from its configuration.
type Factory func(nodeID string, cfg config.Config) (Block, error)

// factories is the open type tag -> factory registry.
var factories = registry.New[string, Factory]()

func init() {
	Register(TypeScalarTextInput, NewTextInput)
	Register(TypeScalarNumberInput, NewNumberInput)
	Register(TypeMathOperation, NewMathOperation)
	Register(TypeTextJoin, NewTextJoin)
	Register(TypeTextOutput, NewTextOutput)
	Register(TypeNumberOutput, NewNumberOutput)
}

// Register binds a factory to a node type tag. Registering an existing tag
// replaces the previous factory.
func Register(typeTag string, f Factory) {
	factories.Register(typeTag, f)
}

// New builds the block for a node. The raw config map comes straight off
// the wire document; factories read it through config.Config accessors.
func New(typeTag, nodeID string, rawConfig map[string]any) (Block, error) {
	f, ok := factories.Get(typeTag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, typeTag)
	}
	return f(nodeID, config.New(rawConfig))
}

// Types returns the registered type tags in sorted order.
func Types() []string {
	tags := factories.Keys()
	sort.Strings(tags)
	return tags
}

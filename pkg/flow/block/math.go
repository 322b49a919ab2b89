package block

import (
	"context"
	"fmt"

	"github.com/aetherloom/cortex/pkg/flow/config"
)

// mathOps maps supported operations to display names used in metadata.
var mathOps = map[string]string{
	"add":      "addition",
	"subtract": "subtraction",
	"multiply": "multiplication",
	"divide":   "division",
}

// MathOperation performs basic arithmetic on the numeric inputs "a" and
// "b". Division by zero is reported as a block error, never as Inf or NaN.
//
// When both operands are integers and the mathematical result is whole,
// the result stays an integer (10 / 2 is 5, not 5.0).
//
// Config:
//   - operation (string): one of "add", "subtract", "multiply", "divide"
type MathOperation struct {
	nodeID string
	op     string
}

// NewMathOperation builds a math operation block. The configured
// operation is validated at construction.
func NewMathOperation(nodeID string, cfg config.Config) (Block, error) {
	op := cfg.String("operation", "add")
	if _, ok := mathOps[op]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return &MathOperation{nodeID: nodeID, op: op}, nil
}

// Run implements Block.
func (b *MathOperation) Run(_ context.Context, inputs map[string]any) Result {
	af, ai, aInt, err := operand(inputs, "a")
	if err != nil {
		return Result{Err: err}
	}
	bf, bi, bInt, err := operand(inputs, "b")
	if err != nil {
		return Result{Err: err}
	}

	bothInt := aInt && bInt
	var value any
	switch b.op {
	case "add":
		if bothInt {
			value = ai + bi
		} else {
			value = af + bf
		}
	case "subtract":
		if bothInt {
			value = ai - bi
		} else {
			value = af - bf
		}
	case "multiply":
		if bothInt {
			value = ai * bi
		} else {
			value = af * bf
		}
	case "divide":
		if bf == 0 {
			return Result{Err: ErrDivideByZero}
		}
		if bothInt && ai%bi == 0 {
			value = ai / bi
		} else {
			value = af / bf
		}
	}

	return Result{
		Value: value,
		Meta: map[string]any{
			"operation":   mathOps[b.op],
			"result_type": fmt.Sprintf("%T", value),
		},
	}
}

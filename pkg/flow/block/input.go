package block

import (
	"context"
	"fmt"

	"github.com/aetherloom/cortex/pkg/flow/config"
)

// TextInput returns a configured text literal. It is a data entry point
// and takes no inputs.
//
// Config:
//   - value (string): the text to return
//   - max_length (int, optional): maximum allowed length
//   - multiline (bool, optional): whether multiline entry is enabled
type TextInput struct {
	nodeID string
	cfg    config.Config
}

// NewTextInput builds a text input block.
func NewTextInput(nodeID string, cfg config.Config) (Block, error) {
	return &TextInput{nodeID: nodeID, cfg: cfg}, nil
}

// Run implements Block.
func (b *TextInput) Run(_ context.Context, _ map[string]any) Result {
	v := b.cfg.Any("value", "")
	s, ok := v.(string)
	if !ok {
		return Result{Err: fmt.Errorf("text value must be a string, got %T", v)}
	}
	if b.cfg.Has("max_length") {
		if max := b.cfg.Int("max_length", 0); max > 0 && len(s) > max {
			return Result{Err: fmt.Errorf("text length %d exceeds maximum %d", len(s), max)}
		}
	}
	return Result{
		Value: s,
		Meta: map[string]any{
			"length":    len(s),
			"multiline": b.cfg.Bool("multiline", false),
		},
	}
}

// NumberInput returns a configured numeric literal. It is a data entry
// point and takes no inputs.
//
// Config:
//   - value (number or numeric string): the value to return
//   - number_type (string, optional): "int", "float", or "auto" (default)
//   - min_value, max_value (number, optional): allowed bounds
type NumberInput struct {
	nodeID string
	cfg    config.Config
}

// NewNumberInput builds a number input block.
func NewNumberInput(nodeID string, cfg config.Config) (Block, error) {
	return &NumberInput{nodeID: nodeID, cfg: cfg}, nil
}

// Run implements Block.
func (b *NumberInput) Run(_ context.Context, _ map[string]any) Result {
	raw := b.cfg.Any("value", 0)
	value, err := coerceNumber(raw, b.cfg.String("number_type", "auto"))
	if err != nil {
		return Result{Err: err}
	}

	f, _, _, _ := numeric(value)
	if b.cfg.Has("min_value") {
		if min := b.cfg.Float("min_value", 0); f < min {
			return Result{Err: fmt.Errorf("value %v is less than minimum %v", value, min)}
		}
	}
	if b.cfg.Has("max_value") {
		if max := b.cfg.Float("max_value", 0); f > max {
			return Result{Err: fmt.Errorf("value %v exceeds maximum %v", value, max)}
		}
	}
	return Result{
		Value: value,
		Meta:  map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// coerceNumber converts a raw config value to int64 or float64 according
// to the configured number_type.
func coerceNumber(raw any, numberType string) (any, error) {
	switch numberType {
	case "int":
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			return int64(v), nil
		case string:
			n, err := parseNumber(v)
			if err != nil {
				return nil, err
			}
			if f, ok := n.(float64); ok {
				return int64(f), nil
			}
			return n, nil
		default:
			return nil, fmt.Errorf("cannot convert %T to integer", raw)
		}
	case "float":
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		case string:
			n, err := parseNumber(v)
			if err != nil {
				return nil, err
			}
			if i, ok := n.(int64); ok {
				return float64(i), nil
			}
			return n, nil
		default:
			return nil, fmt.Errorf("cannot convert %T to float", raw)
		}
	case "auto", "":
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64, float64:
			return v, nil
		case string:
			return parseNumber(v)
		default:
			return nil, fmt.Errorf("cannot convert %T to number", raw)
		}
	default:
		return nil, fmt.Errorf("unknown number_type %q", numberType)
	}
}

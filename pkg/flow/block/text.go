package block

import (
	"context"
	"fmt"
	"sort"

	"github.com/aetherloom/cortex/pkg/flow/config"
)

// TextJoin concatenates its text inputs "a" and "b" around a separator.
// Extra connected handles, if a custom type declares any, are appended in
// sorted handle order so the output stays deterministic.
//
// Config:
//   - separator (string): joining string, default a single space. Any
//     string is accepted, including "" for plain concatenation.
type TextJoin struct {
	nodeID    string
	separator string
}

// NewTextJoin builds a text join block.
func NewTextJoin(nodeID string, cfg config.Config) (Block, error) {
	return &TextJoin{
		nodeID:    nodeID,
		separator: cfg.String("separator", " "),
	}, nil
}

// Run implements Block.
func (b *TextJoin) Run(_ context.Context, inputs map[string]any) Result {
	ordered := []string{"a", "b"}
	for _, handle := range ordered {
		if _, ok := inputs[handle]; !ok {
			return Result{Err: fmt.Errorf("%w: %q", ErrMissingInput, handle)}
		}
	}
	var extras []string
	for handle := range inputs {
		if handle != "a" && handle != "b" {
			extras = append(extras, handle)
		}
	}
	sort.Strings(extras)
	ordered = append(ordered, extras...)

	parts := make([]string, 0, len(ordered))
	for _, handle := range ordered {
		s, err := formatScalar(inputs[handle])
		if err != nil {
			return Result{Err: fmt.Errorf("input %q: %w", handle, err)}
		}
		parts = append(parts, s)
	}

	joined := ""
	for i, p := range parts {
		if i > 0 {
			joined += b.separator
		}
		joined += p
	}
	return Result{
		Value: joined,
		Meta: map[string]any{
			"input_count":   len(parts),
			"separator":     b.separator,
			"output_length": len(joined),
		},
	}
}

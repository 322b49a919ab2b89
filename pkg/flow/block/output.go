package block

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aetherloom/cortex/pkg/flow/config"
)

// TextOutput is a terminal sink: it stores its single input verbatim for
// reporting and performs no transformation on the value itself. A display
// rendering is attached as metadata.
//
// Config:
//   - format (string): "plain" (default), "json", or "pretty"
//   - max_display_length (int, optional): truncate the rendering
type TextOutput struct {
	nodeID string
	cfg    config.Config
}

// NewTextOutput builds a text output block.
func NewTextOutput(nodeID string, cfg config.Config) (Block, error) {
	return &TextOutput{nodeID: nodeID, cfg: cfg}, nil
}

// Run implements Block.
func (b *TextOutput) Run(_ context.Context, inputs map[string]any) Result {
	v, ok := inputs["in"]
	if !ok {
		// A disconnected display is empty, not broken.
		return Result{Value: "", Meta: map[string]any{"input_count": 0}}
	}

	rendered, err := b.render(v)
	if err != nil {
		return Result{Err: err}
	}
	if b.cfg.Has("max_display_length") {
		if max := b.cfg.Int("max_display_length", 0); max > 0 && len(rendered) > max {
			rendered = rendered[:max]
		}
	}
	return Result{
		Value: v,
		Meta: map[string]any{
			"input_count": 1,
			"format":      b.cfg.String("format", "plain"),
			"rendered":    rendered,
		},
	}
}

// render produces the display form of the value per the format config.
func (b *TextOutput) render(v any) (string, error) {
	switch b.cfg.String("format", "plain") {
	case "json":
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("render json: %w", err)
		}
		return string(data), nil
	case "pretty":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("render json: %w", err)
		}
		return string(data), nil
	default:
		return formatScalar(v)
	}
}

// NumberOutput is a terminal sink for numeric values: it validates that
// its single input is a number, stores it verbatim, and attaches a
// formatted rendering as metadata.
//
// Config:
//   - decimal_places (int, optional): fixed decimals for floats
//   - use_thousands_separator (bool): group the integer part
//   - scientific_notation (bool): force scientific rendering
//   - scientific_threshold (float): magnitude that triggers scientific
//     rendering for floats, default 1e6
type NumberOutput struct {
	nodeID string
	cfg    config.Config
}

// NewNumberOutput builds a number output block.
func NewNumberOutput(nodeID string, cfg config.Config) (Block, error) {
	return &NumberOutput{nodeID: nodeID, cfg: cfg}, nil
}

// Run implements Block.
func (b *NumberOutput) Run(_ context.Context, inputs map[string]any) Result {
	v, ok := inputs["in"]
	if !ok {
		return Result{Err: fmt.Errorf("%w: %q", ErrMissingInput, "in")}
	}
	if s, isStr := v.(string); isStr {
		parsed, err := parseNumber(s)
		if err != nil {
			return Result{Err: err}
		}
		v = parsed
	}
	f, i, isInt, err := numeric(v)
	if err != nil {
		return Result{Err: err}
	}

	return Result{
		Value: v,
		Meta: map[string]any{
			"rendered": b.format(f, i, isInt),
		},
	}
}

// format renders the number for display per the configured options.
func (b *NumberOutput) format(f float64, i int64, isInt bool) string {
	// Special float values render symbolically rather than numerically.
	if !isInt {
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "∞"
		case math.IsInf(f, -1):
			return "-∞"
		}
	}

	decimals := b.cfg.Int("decimal_places", -1)
	scientific := b.cfg.Bool("scientific_notation", false)
	threshold := b.cfg.Float("scientific_threshold", 1e6)

	if scientific || (!isInt && math.Abs(f) >= threshold) {
		d := decimals
		if d < 0 {
			d = 2
		}
		return strconv.FormatFloat(f, 'e', d, 64)
	}

	var rendered string
	switch {
	case isInt:
		rendered = strconv.FormatInt(i, 10)
	case decimals >= 0:
		rendered = strconv.FormatFloat(f, 'f', decimals, 64)
	default:
		rendered = strconv.FormatFloat(f, 'g', -1, 64)
	}

	if b.cfg.Bool("use_thousands_separator", false) {
		rendered = groupThousands(rendered)
	}
	return rendered
}

// groupThousands inserts comma separators into the integer part of an
// already-rendered decimal number.
func groupThousands(s string) string {
	intPart := s
	rest := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, rest = s[:idx], s[idx:]
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + rest
	}
	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for pos := lead; pos < len(intPart); pos += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[pos : pos+3])
	}
	return sign + sb.String() + rest
}

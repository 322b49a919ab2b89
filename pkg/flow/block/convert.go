package block

import (
	"fmt"
	"strconv"
	"strings"
)

// numeric normalizes a scalar to float64 while remembering whether it was
// an integer type. JSON documents deliver float64, YAML delivers int, and
// blocks computing on both need the distinction to preserve integer
// results.
func numeric(v any) (f float64, i int64, isInt bool, err error) {
	switch val := v.(type) {
	case int:
		return float64(val), int64(val), true, nil
	case int64:
		return float64(val), val, true, nil
	case float64:
		return val, 0, false, nil
	default:
		return 0, 0, false, fmt.Errorf("%w: got %T", ErrNotANumber, v)
	}
}

// operand extracts a required numeric input by handle id.
func operand(inputs map[string]any, handle string) (float64, int64, bool, error) {
	v, ok := inputs[handle]
	if !ok {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrMissingInput, handle)
	}
	f, i, isInt, err := numeric(v)
	if err != nil {
		return 0, 0, false, fmt.Errorf("input %q: %w", handle, err)
	}
	return f, i, isInt, nil
}

// formatScalar renders a primitive scalar as text. Anything beyond
// primitive scalars is rejected; the engine performs no deeper coercion.
func formatScalar(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrNotText, v)
	}
}

// parseNumber converts a string to int64 or float64 following the auto
// rule: a decimal point or exponent makes it a float, otherwise an int.
func parseNumber(s string) (any, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to number", s)
		}
		return f, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to number", s)
	}
	return i, nil
}

package block

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run builds a block for the type tag and runs it with no inputs.
func run(t *testing.T, typeTag string, cfg map[string]any) Result {
	t.Helper()
	b, err := New(typeTag, "test-node", cfg)
	require.NoError(t, err)
	return b.Run(context.Background(), nil)
}

// TestTextInput tests the text literal source.
func TestTextInput(t *testing.T) {
	result := run(t, TypeScalarTextInput, map[string]any{"value": "hello"})
	require.NoError(t, result.Err)
	assert.Equal(t, "hello", result.Value)
	assert.Equal(t, 5, result.Meta["length"])
}

// TestTextInput_Empty tests that an unconfigured text input yields "".
func TestTextInput_Empty(t *testing.T) {
	result := run(t, TypeScalarTextInput, nil)
	require.NoError(t, result.Err)
	assert.Equal(t, "", result.Value)
}

// TestTextInput_NonString tests rejection of non-string values.
func TestTextInput_NonString(t *testing.T) {
	result := run(t, TypeScalarTextInput, map[string]any{"value": 12})
	assert.Error(t, result.Err)
}

// TestTextInput_MaxLength tests the configured length bound.
func TestTextInput_MaxLength(t *testing.T) {
	result := run(t, TypeScalarTextInput, map[string]any{"value": "short", "max_length": 10})
	assert.NoError(t, result.Err)

	result = run(t, TypeScalarTextInput, map[string]any{"value": "far too long", "max_length": 5})
	assert.ErrorContains(t, result.Err, "exceeds maximum")
}

// TestNumberInput_Auto tests the default number_type behavior across
// input encodings.
func TestNumberInput_Auto(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  any
	}{
		{name: "go int", value: 10, want: int64(10)},
		{name: "json float", value: 10.0, want: 10.0},
		{name: "fractional float", value: 2.5, want: 2.5},
		{name: "int string", value: "42", want: int64(42)},
		{name: "float string", value: "3.5", want: 3.5},
		{name: "negative int string", value: "-8", want: int64(-8)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := run(t, TypeScalarNumberInput, map[string]any{"value": tc.value})
			require.NoError(t, result.Err)
			assert.Equal(t, tc.want, result.Value)
		})
	}
}

// TestNumberInput_TypedCoercion tests explicit int and float coercion.
func TestNumberInput_TypedCoercion(t *testing.T) {
	result := run(t, TypeScalarNumberInput, map[string]any{"value": 3.9, "number_type": "int"})
	require.NoError(t, result.Err)
	assert.Equal(t, int64(3), result.Value) // truncated, not rounded

	result = run(t, TypeScalarNumberInput, map[string]any{"value": 3, "number_type": "float"})
	require.NoError(t, result.Err)
	assert.Equal(t, 3.0, result.Value)

	result = run(t, TypeScalarNumberInput, map[string]any{"value": "7", "number_type": "float"})
	require.NoError(t, result.Err)
	assert.Equal(t, 7.0, result.Value)
}

// TestNumberInput_InvalidValue tests unparseable and untyped values.
func TestNumberInput_InvalidValue(t *testing.T) {
	result := run(t, TypeScalarNumberInput, map[string]any{"value": "not numeric"})
	assert.Error(t, result.Err)

	result = run(t, TypeScalarNumberInput, map[string]any{"value": []int{1}})
	assert.Error(t, result.Err)

	result = run(t, TypeScalarNumberInput, map[string]any{"value": 1, "number_type": "complex"})
	assert.ErrorContains(t, result.Err, "number_type")
}

// TestNumberInput_Bounds tests the optional min/max bounds.
func TestNumberInput_Bounds(t *testing.T) {
	cfg := map[string]any{"value": 50, "min_value": 0, "max_value": 100}
	result := run(t, TypeScalarNumberInput, cfg)
	assert.NoError(t, result.Err)

	result = run(t, TypeScalarNumberInput, map[string]any{"value": -1, "min_value": 0})
	assert.ErrorContains(t, result.Err, "less than minimum")

	result = run(t, TypeScalarNumberInput, map[string]any{"value": 101, "max_value": 100})
	assert.ErrorContains(t, result.Err, "exceeds maximum")
}

/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

Node configs arrive from the wire as untyped maps: JSON decodes numbers to
float64, YAML decodes them to int, and a hostile document can put anything
anywhere. Config wraps such a map and provides typed accessor methods that
handle missing keys and type mismatches gracefully by returning defaults,
so block implementations stay free of type assertions and nil checks.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "operation": "divide",
	    "max_length": 80,
	    "multiline": true,
	})

	op := cfg.String("operation", "add")  // "divide"
	max := cfg.Int("max_length", 0)       // 80
	multi := cfg.Bool("multiline", false) // true
	sep := cfg.String("separator", " ")   // " " (missing key)

Use Has to distinguish an absent option from its zero value:

	if cfg.Has("max_length") {
	    // bound configured, enforce it
	}

# Type Coercion

Numeric accessors handle the cross-format ambiguity:
  - Int accepts int, int64, and float64 without a fractional part
  - Float accepts float64, int, and int64

All methods return the default if the key is missing, the value cannot be
converted, or the conversion would lose precision.

# File Loading

FromFile, FromYAML, and FromJSON load configuration maps from files and
byte slices, auto-detecting format by extension in the file case.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config

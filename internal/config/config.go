// Package config loads the optional pipeline config file `mkvsynth run
// --config` accepts: a flat YAML document of Num/Bool/Str defaults that
// are defined as ordinary Vars in the global environment before a
// script runs (SPEC_FULL.md §6.3 "Config file").
//
// Grounded on original_source/filters/encode.c's initializeEncoder,
// which hard-codes its encode-context knobs (i_rc_method, f_rf_constant,
// the "fast" preset) — this package gives those knobs a script-level
// home as named values (e.g. `crf`, `preset`) instead of baking them
// into a filter implementation.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ddushkinn/mkvsynth/internal/ast"
)

// Defaults is a flat set of named Num/Bool/Str values loaded from a
// config file.
type Defaults map[string]any

// Load reads and parses a YAML config file at path.
func Load(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return Defaults(raw), nil
}

// Installer is the minimal surface config needs to define a global Var
// — satisfied by *interp.Environment.
type Installer interface {
	PutVar(name string) *ast.Node
}

// Assigner is the minimal surface config needs to write a Var's value —
// satisfied by interp.Assign, passed in by the caller to avoid an
// internal/config -> internal/interp -> internal/config import cycle.
type Assigner func(target *ast.Node, value *ast.Node)

// Apply defines every entry of d as a global Var, via install, and
// assigns it its value, via assign. Unsupported YAML value types
// (nested maps/lists) are rejected rather than silently dropped.
func (d Defaults) Apply(install Installer, assign Assigner) error {
	for name, raw := range d {
		value, err := toNode(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
		v := install.PutVar(name)
		assign(v, value)
	}
	return nil
}

// toNode converts a YAML-decoded scalar into the mkvsynth value node it
// represents (spec.md §3.1's three storable scalar kinds).
func toNode(raw any) (*ast.Node, error) {
	switch v := raw.(type) {
	case bool:
		return ast.NewBool(v), nil
	case string:
		return ast.NewStr(v), nil
	case int:
		return ast.NewNum(float64(v)), nil
	case int64:
		return ast.NewNum(float64(v)), nil
	case float64:
		return ast.NewNum(v), nil
	case uint64:
		return ast.NewNum(float64(v)), nil
	default:
		return nil, fmt.Errorf("unsupported config value %v (%T); only numbers, booleans, and strings are allowed", raw, raw)
	}
}

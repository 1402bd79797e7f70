// Package runner wires the lexer, parser, evaluator, built-in registry,
// filter registry, and graph runtime stub into a runnable pipeline —
// mkvsynth's analogue of CWBudde-go-dws/internal/interp/runner, which
// keeps internal/interp free of evaluator-specific imports by doing all
// the wiring in one small package above it.
package runner

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/config"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/filters"
	"github.com/ddushkinn/mkvsynth/internal/graph"
	"github.com/ddushkinn/mkvsynth/internal/interp"
	"github.com/ddushkinn/mkvsynth/internal/interp/builtins"
	"github.com/ddushkinn/mkvsynth/internal/lexer"
	"github.com/ddushkinn/mkvsynth/internal/parser"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// NewEnvironment creates a global environment with every built-in and
// filter installed, and a fresh graph runtime ready for `go()` (spec.md
// §3.2, §5, §9's "sole extension point").
func NewEnvironment() *interp.Environment {
	env := interp.NewGlobalEnvironment()
	builtins.DefaultRegistry.InstallAll(env)
	filters.DefaultRegistry.InstallAll(env)
	env.Put("graph", graph.New())
	return env
}

// LoadConfig applies a YAML config file's defaults to env's global Vars
// before a script runs (SPEC_FULL.md §6.3).
func LoadConfig(env *interp.Environment, path string) error {
	defaults, err := config.Load(path)
	if err != nil {
		return err
	}
	return defaults.Apply(env, func(target, value *ast.Node) {
		interp.Assign(target, token.ASSIGN, value)
	})
}

// Parse lexes and parses source into its root AST, without evaluating
// it — used by `mkvsynth run --dump-ast`.
func Parse(source string) (prog *ast.Node, err error) {
	defer evalerr.Recover(&err)
	p := parser.New(lexer.New(source))
	prog = p.ParseProgram()
	return prog, nil
}

// Run parses and evaluates source against env, converting any raised
// evalerr.Error into a returned error (spec.md §7's single escape
// hatch, recovered exactly once at this script-run boundary).
func Run(env *interp.Environment, source string) (err error) {
	defer evalerr.Recover(&err)
	p := parser.New(lexer.New(source))
	prog := p.ParseProgram()
	interp.Ex(env, prog)
	return nil
}

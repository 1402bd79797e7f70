// Package interp implements the mkvsynth evaluator: identifier resolution,
// dereferencing, operators, call machinery, and the statement executor
// (spec.md §4). Semantics are grounded directly on
// original_source/delbrot/delbrot.c, the authoritative C implementation
// this spec was distilled from; Go idiom (panic/recover for the return
// anchor, an Environment struct with a parent pointer) is grounded on
// CWBudde-go-dws/internal/interp/runtime/environment.go.
package interp

import "github.com/ddushkinn/mkvsynth/internal/ast"

// Environment is a scope: a variable table, a function table, a pointer to
// the parent (or nil for the global environment), and a services map used
// only by the global environment to hand ambient runtime objects (the
// filter-graph runtime) to built-ins through the ast.Env
// interface (spec.md §3.2).
type Environment struct {
	vars     map[string]*ast.Node // name -> Var node
	fns      map[string]*ast.Node // name -> Fn node
	parent   *Environment
	services map[string]any // only populated on the global Environment
}

// NewGlobalEnvironment creates the root environment, created once at
// startup (spec.md §3.2).
func NewGlobalEnvironment() *Environment {
	return &Environment{
		vars:     make(map[string]*ast.Node),
		fns:      make(map[string]*ast.Node),
		services: make(map[string]any),
	}
}

// NewChild creates a per-call frame with parent as its enclosing
// environment (spec.md §4.6.3 step 1). Per-call frames are created on
// user function entry and discarded on return (spec.md §3.2).
func NewChild(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]*ast.Node),
		fns:    make(map[string]*ast.Node),
		parent: parent,
	}
}

// GetVar walks the parent chain looking for a variable named name,
// returning the live Var node (not a copy) or nil if not visible.
func (e *Environment) GetVar(name string) *ast.Node {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v
		}
	}
	return nil
}

// GetFn walks the parent chain looking for a function named name,
// returning the live Fn node or nil if not visible.
func (e *Environment) GetFn(name string) *ast.Node {
	for env := e; env != nil; env = env.parent {
		if f, ok := env.fns[name]; ok {
			return f
		}
	}
	return nil
}

// PutVar creates a fresh, undefined Var node named name in e (never in a
// parent) and returns it — "creation (putVar/putFn) always targets the
// current environment" (spec.md §3.2).
func (e *Environment) PutVar(name string) *ast.Node {
	v := ast.NewVar(name)
	e.vars[name] = v
	return v
}

// PutFn installs fn (a Fn-tagged node) under name in e's local function
// table.
func (e *Environment) PutFn(name string, fn *ast.Node) {
	e.fns[name] = fn
}

// root walks up to the global environment.
func (e *Environment) root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// Global implements ast.Env.
func (e *Environment) Global() ast.Env {
	return e.root()
}

// Put implements ast.Env: stores an ambient service object on the global
// environment, reachable from any frame via Global().
func (e *Environment) Put(key string, value any) {
	root := e.root()
	root.services[key] = value
}

// Get implements ast.Env.
func (e *Environment) Get(key string) (any, bool) {
	root := e.root()
	v, ok := root.services[key]
	return v, ok
}

// Package builtins implements the fixed-signature core built-ins of
// spec.md §6.2 (print, show, read, sin, cos, log, sqrt, assert, go) and
// the registry pattern used to populate the global function namespace.
//
// Grounded on CWBudde-go-dws/internal/interp/builtins/registry.go (a
// Registry of name -> implementation, populated by category-grouped
// RegisterX functions) and on original_source/delbrot/delbrot.c for each
// function's exact semantics.
package builtins

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/ddushkinn/mkvsynth/internal/ast"
)

// Registry holds the set of core built-ins by name.
type Registry struct {
	funcs map[string]ast.CoreFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]ast.CoreFunc)}
}

// Register adds a core function under name, replacing any existing entry.
func (r *Registry) Register(name string, fn ast.CoreFunc) {
	r.funcs[name] = fn
}

// Names returns the registered function names in natural sort order (so
// `list-builtins` reads "sin2" before "sin10" the way a human expects,
// not after it as a plain lexical sort would).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// InstallAll wraps every registered function in a Fn node and installs it
// into inst's function table — the evaluator's sole extension point from
// builtins/filters (spec.md §9).
func (r *Registry) InstallAll(inst ast.FnInstaller) {
	for name, fn := range r.funcs {
		inst.PutFn(name, &ast.Node{
			Tag: ast.FnTag,
			FnVal: &ast.FnData{
				Name:   name,
				IsCore: true,
				Core:   fn,
			},
		})
	}
}

// DefaultRegistry is populated at init time with every core built-in
// spec.md §6.2 names.
var DefaultRegistry = NewRegistry()

func init() {
	RegisterAll(DefaultRegistry)
}

// RegisterAll registers every core built-in with r.
func RegisterAll(r *Registry) {
	RegisterIO(r)
	RegisterMath(r)
	RegisterSystem(r)
}

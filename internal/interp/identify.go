package interp

import "github.com/ddushkinn/mkvsynth/internal/ast"

// Identify resolves a bare identifier node (spec.md §4.2):
//  1. a visible function by that name wins (functions shadow variables),
//  2. else a visible variable wins,
//  3. else a fresh, undefined Var is created in e.
//
// The resolver returns a node that retains p's original Next link.
func Identify(e *Environment, p *ast.Node) *ast.Node {
	if p.Tag != ast.Id {
		return p
	}

	var resolved *ast.Node
	if fn := e.GetFn(p.IdVal); fn != nil {
		resolved = ast.Copy(fn)
	} else if v := e.GetVar(p.IdVal); v != nil {
		resolved = ast.Copy(v)
	} else {
		resolved = e.PutVar(p.IdVal)
	}

	resolved.Next = p.Next
	return resolved
}

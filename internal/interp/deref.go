package interp

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
)

// Deref resolves a Var node to its current value (spec.md §4.3). Fails
// with "uninitialized variable" if the Var has never been assigned.
func Deref(p *ast.Node) *ast.Node {
	if p.VarVal.Value == nil {
		evalerr.Raisef("uninitialized variable %s", p.VarVal.Name)
	}
	d := ast.Copy(p.VarVal.Value)
	d.Next = p.Next
	return d
}

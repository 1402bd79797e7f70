package interp

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// SetDefault implements the `default` statement (spec.md §4.8). It looks
// up name in the current frame; if it is an optional Var with no value
// yet, it assigns value. Defaulting an already-set or non-optional
// parameter is a silent no-op — spec.md's Open Question (b) resolves
// this as specified behavior, not a bug (see DESIGN.md).
func SetDefault(e *Environment, paramNode *ast.Node, value *ast.Node) *ast.Node {
	param := e.GetVar(paramNode.IdVal)
	if param != nil && param.VarVal.IsOptional && param.VarVal.Value == nil {
		Assign(param, token.ASSIGN, value)
	}
	return param
}

package interp

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// Assign implements spec.md §4.4. target must already be the result of
// Identify (a Var node); op is the assignment operator's token.Kind.
func Assign(target *ast.Node, op token.Kind, rhs *ast.Node) *ast.Node {
	if op == token.ASSIGN {
		if target.Tag != ast.VarTag {
			evalerr.Raisef("can't assign to a constant value (got %s)", target.Tag)
		}
		if !rhs.Storable() {
			evalerr.Raisef("type mismatch: can't assign type %s to variable", rhs.Tag)
		}
		// Write through the existing Value pointer (allocating it on first
		// assignment) rather than replacing it: Identify hands out a Copy
		// whose VarData is a fresh struct that only aliases the original's
		// Value pointer, so replacing that pointer here would update only
		// this copy, never the storage a later Identify of the same name
		// would see.
		if target.VarVal.Value == nil {
			target.VarVal.Value = new(ast.Node)
		}
		*target.VarVal.Value = *ast.Copy(rhs)
		return target
	}

	if target.Tag != ast.VarTag {
		evalerr.Raisef("can't modify constant value (got %s)", target.Tag)
	}
	if target.VarVal.Value == nil {
		evalerr.Raisef("reference to uninitialized variable \"%s\"", target.VarVal.Name)
	}
	if target.VarVal.Value.Tag != ast.Num {
		evalerr.Raisef("can't modify non-numeric variable \"%s\"", target.VarVal.Name)
	}
	if rhs.Tag != ast.Num {
		evalerr.Raisef("type mismatch: can't modify variable %s with non-numeric type (expected number, got %s)", target.VarVal.Name, rhs.Tag)
	}

	cur := target.VarVal.Value.NumVal
	rv := rhs.NumVal
	switch op {
	case token.ADDEQ:
		target.VarVal.Value.NumVal = cur + rv
	case token.SUBEQ:
		target.VarVal.Value.NumVal = cur - rv
	case token.MULEQ:
		target.VarVal.Value.NumVal = cur * rv
	case token.DIVEQ:
		target.VarVal.Value.NumVal = cur / rv
	case token.POWEQ:
		target.VarVal.Value.NumVal = numPow(cur, rv)
	case token.MODEQ:
		target.VarVal.Value.NumVal = float64(int64(cur) % int64(rv))
	default:
		evalerr.Raisef("unrecognized assignment operator %s", op)
	}

	return Deref(target)
}

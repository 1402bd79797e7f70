package interp

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
)

// Ex is the root dispatcher (spec.md §4.7), grounded on
// original_source/delbrot/delbrot.c's ex(). For non-Op nodes it resolves
// identifiers, dereferences variables, and auto-calls zero-argument
// functions; for Op nodes it switches on the operator tag.
func Ex(e *Environment, p *ast.Node) *ast.Node {
	if p == nil {
		return nil
	}

	if p.Tag == ast.Id {
		p = Identify(e, p)
	}
	if p.Tag == ast.VarTag {
		p = Deref(p)
	}
	// A bare function name in expression position (no parentheses) still
	// dispatches (spec.md §8.3 "typeFn nodes at expression position
	// auto-call with no args").
	if p.Tag == ast.FnTag {
		p = FnctCall(e, p, nil)
	}

	if p.Tag != ast.OpTag {
		return p
	}

	op := p.OpVal
	ops := op.Ops

	switch op.Oper {
	case ast.FNDEF:
		FuncDefine(e, ops[0], ast.ToSlice(ops[1]), ops[2])
		return nil

	case ast.IF:
		cond := Ex(e, ops[0])
		if cond.Tag != ast.Bool {
			evalerr.Raisef("if expected boolean, got %s", cond.Tag)
		}
		if cond.BoolVal {
			return Ex(e, ops[1])
		} else if len(ops) == 3 {
			return Ex(e, ops[2])
		}
		return nil

	case ast.FNCT:
		callee := Identify(e, ops[0])
		args := ReduceArgs(e, ops[1])
		return FnctCall(e, callee, args)

	case ast.CHAIN:
		// a.f(b, c) lowers to f(a, b, c) (spec.md §4.6.5): the left-hand
		// value is prepended to the (normally reduced) argument list,
		// then a normal call is issued.
		left := Ex(e, ops[0])
		callee := Identify(e, ops[1])
		rest := ReduceArgs(e, ops[2])
		left.Next = rest
		return FnctCall(e, callee, left)

	case ast.DEFAULT:
		value := Ex(e, ops[1])
		SetDefault(e, ops[0], value)
		return nil

	case ast.RETURN:
		var value *ast.Node
		if len(ops) > 0 && ops[0] != nil {
			value = Ex(e, ops[0])
		}
		panic(returnSignal{value: value})

	case ast.ASSIGN:
		target := Identify(e, ops[0])
		rhs := Ex(e, ops[1])
		return Assign(target, op.SubOp, rhs)

	case ast.NEG:
		return Neg(Ex(e, ops[0]))

	case ast.NOT:
		return Not(Ex(e, ops[0]))

	case ast.BINOP:
		c1 := Ex(e, ops[0])
		c2 := Ex(e, ops[1])
		return BinOp(c1, op.SubOp, c2)

	case ast.TERN:
		cond := Ex(e, ops[0])
		return Ternary(cond,
			func() *ast.Node { return Ex(e, ops[1]) },
			func() *ast.Node { return Ex(e, ops[2]) },
		)

	case ast.SEQ:
		Ex(e, ops[0])
		return Ex(e, ops[1])

	case ast.WHILE:
		return execWhile(e, ops[0], ops[1])

	case ast.FOR:
		return execFor(e, ops[0], ops[1], ops[2], ops[3])

	default:
		evalerr.Raisef("unknown operator %d", op.Oper)
	}

	panic("unreachable")
}

// execWhile implements the supplemented `while` statement (SPEC_FULL.md
// §4.10): re-evaluate cond (must be Bool) before each iteration.
func execWhile(e *Environment, cond, body *ast.Node) *ast.Node {
	for {
		c := Ex(e, ast.Copy(cond))
		if c.Tag != ast.Bool {
			evalerr.Raisef("while expected boolean, got %s", c.Tag)
		}
		if !c.BoolVal {
			return nil
		}
		Ex(e, ast.Copy(body))
	}
}

// execFor implements the supplemented `for` statement (SPEC_FULL.md
// §4.10): evaluate init once, then behave as while(cond) { body; step; }.
func execFor(e *Environment, init, cond, step, body *ast.Node) *ast.Node {
	Ex(e, ast.Copy(init))
	for {
		c := Ex(e, ast.Copy(cond))
		if c.Tag != ast.Bool {
			evalerr.Raisef("for expected boolean, got %s", c.Tag)
		}
		if !c.BoolVal {
			return nil
		}
		Ex(e, ast.Copy(body))
		Ex(e, ast.Copy(step))
	}
}

package parser_test

import (
	"testing"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/lexer"
	"github.com/ddushkinn/mkvsynth/internal/parser"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

func parse(src string) *ast.Node {
	p := parser.New(lexer.New(src))
	return p.ParseProgram()
}

func TestArithmeticPrecedenceBindsStarTighterThanPlus(t *testing.T) {
	prog := parse("1 + 2 * 3;")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.BINOP || prog.OpVal.SubOp != token.PLUS {
		t.Fatalf("expected top-level PLUS, got %v", prog)
	}
	right := prog.OpVal.Ops[1]
	if right.Tag != ast.OpTag || right.OpVal.Oper != ast.BINOP || right.OpVal.SubOp != token.STAR {
		t.Fatalf("expected right operand to be the STAR subtree, got %v", right)
	}
}

func TestCaretBindsTighterThanUnaryMinus(t *testing.T) {
	prog := parse("-2 ^ 2;")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.NEG {
		t.Fatalf("expected top-level NEG, got %v", prog)
	}
	inner := prog.OpVal.Ops[0]
	if inner.Tag != ast.OpTag || inner.OpVal.Oper != ast.BINOP || inner.OpVal.SubOp != token.CARET {
		t.Fatalf("expected -(2^2) to parse as NEG(CARET(2,2)), got %v", inner)
	}
}

func TestTernaryIsRightAssociative(t *testing.T) {
	prog := parse("true ? 1 : false ? 2 : 3;")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.TERN {
		t.Fatalf("expected top-level TERN, got %v", prog)
	}
	elseBranch := prog.OpVal.Ops[2]
	if elseBranch.Tag != ast.OpTag || elseBranch.OpVal.Oper != ast.TERN {
		t.Fatalf("expected nested ternary in the else branch, got %v", elseBranch)
	}
}

func TestCallExpressionStatementParsesAsFNCT(t *testing.T) {
	prog := parse("f(1, 2);")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.FNCT {
		t.Fatalf("expected a top-level FNCT, got %v", prog)
	}
	if prog.OpVal.Ops[0].IdVal != "f" {
		t.Fatalf("expected callee id %q, got %q", "f", prog.OpVal.Ops[0].IdVal)
	}
}

func TestFunctionDefinitionDisambiguatedFromCall(t *testing.T) {
	prog := parse("f(a, b) { return a + b; }")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.FNDEF {
		t.Fatalf("expected a top-level FNDEF, got %v", prog)
	}
}

func TestChainExpressionParsesAsCHAIN(t *testing.T) {
	prog := parse("a.f(1);")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.CHAIN {
		t.Fatalf("expected a top-level CHAIN, got %v", prog)
	}
	if prog.OpVal.Ops[1].IdVal != "f" {
		t.Fatalf("expected method name %q, got %q", "f", prog.OpVal.Ops[1].IdVal)
	}
}

func TestInlineParamDefaultDesugarsToDefaultStatement(t *testing.T) {
	prog := parse("g(x, y=2) { return x; }")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.FNDEF {
		t.Fatalf("expected a top-level FNDEF, got %v", prog)
	}
	body := prog.OpVal.Ops[2]
	if body.Tag != ast.OpTag || body.OpVal.Oper != ast.SEQ {
		t.Fatalf("expected a desugared default statement prepended to the body, got %v", body)
	}
	defStmt := body.OpVal.Ops[0]
	if defStmt.Tag != ast.OpTag || defStmt.OpVal.Oper != ast.DEFAULT {
		t.Fatalf("expected the prepended statement to be DEFAULT, got %v", defStmt)
	}
	if defStmt.OpVal.Ops[0].IdVal != "y" {
		t.Fatalf("expected the default target to be %q, got %q", "y", defStmt.OpVal.Ops[0].IdVal)
	}
}

func TestParamListMarksOptionalViaInlineDefault(t *testing.T) {
	prog := parse("g(x, y=2) { }")
	params := ast.ToSlice(prog.OpVal.Ops[1])
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
	if params[0].VarVal.IsOptional {
		t.Fatal("expected x to be mandatory")
	}
	if !params[1].VarVal.IsOptional {
		t.Fatal("expected y to be marked optional by its inline default")
	}
}

func TestTypedParamSetsDeclaredTypeTag(t *testing.T) {
	prog := parse("h(num a) { }")
	params := ast.ToSlice(prog.OpVal.Ops[1])
	if params[0].VarVal.TypeTag != ast.Num {
		t.Fatalf("expected declared type num, got %v", params[0].VarVal.TypeTag)
	}
}

func TestUntypedParamGetsAnyTag(t *testing.T) {
	prog := parse("h(a) { }")
	params := ast.ToSlice(prog.OpVal.Ops[1])
	if params[0].VarVal.TypeTag != ast.AnyTag {
		t.Fatalf("expected AnyTag for an untyped parameter, got %v", params[0].VarVal.TypeTag)
	}
}

func TestNamedArgumentParsesAsOptArg(t *testing.T) {
	prog := parse("f(x=1);")
	args := prog.OpVal.Ops[1]
	if args.Tag != ast.OptArg || args.OptArgVal.Name != "x" {
		t.Fatalf("expected an OptArg named x, got %v", args)
	}
}

func TestWhileStatementParsesCondAndBody(t *testing.T) {
	prog := parse("while (true) { 1; }")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.WHILE {
		t.Fatalf("expected a top-level WHILE, got %v", prog)
	}
}

func TestForStatementParsesInitCondStepBody(t *testing.T) {
	prog := parse("for (i = 0; i < 3; i += 1) { 1; }")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.FOR {
		t.Fatalf("expected a top-level FOR, got %v", prog)
	}
	if len(prog.OpVal.Ops) != 4 {
		t.Fatalf("expected 4 FOR operands (init, cond, step, body), got %d", len(prog.OpVal.Ops))
	}
}

func TestIfElseIfElseChains(t *testing.T) {
	prog := parse("if (a) { 1; } else if (b) { 2; } else { 3; }")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.IF {
		t.Fatalf("expected a top-level IF, got %v", prog)
	}
	if len(prog.OpVal.Ops) != 3 {
		t.Fatalf("expected 3 IF operands (cond, then, elseif), got %d", len(prog.OpVal.Ops))
	}
	elseif := prog.OpVal.Ops[2]
	if elseif.Tag != ast.OpTag || elseif.OpVal.Oper != ast.IF {
		t.Fatalf("expected the else-if branch to itself be an IF, got %v", elseif)
	}
}

func TestCompoundAssignmentCarriesSubOp(t *testing.T) {
	prog := parse("x += 1;")
	if prog.Tag != ast.OpTag || prog.OpVal.Oper != ast.ASSIGN {
		t.Fatalf("expected a top-level ASSIGN, got %v", prog)
	}
	if prog.OpVal.SubOp != token.ADDEQ {
		t.Fatalf("expected SubOp ADDEQ, got %v", prog.OpVal.SubOp)
	}
}

func TestUnexpectedTokenInExpressionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected parsing a dangling operator to panic")
		}
	}()
	parse("1 + ;")
}

func TestMismatchedParenPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected parsing an unclosed paren to panic")
		}
	}()
	parse("f(1, 2;")
}

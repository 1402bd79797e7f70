package parser

import (
	"strconv"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// parseExpression is the Pratt loop: parse a prefix expression, then
// keep folding in infix operators whose precedence exceeds prec.
func (p *Parser) parseExpression(prec int) *ast.Node {
	prefix, ok := p.prefixFns[p.cur().Kind]
	if !ok {
		evalerr.Raise(evalerr.Newf("unexpected token %s in expression", p.cur().Kind).At(p.cur().Pos))
	}
	left := prefix()

	for prec < peekPrecedence(p.cur().Kind) {
		infix, ok := p.infixFns[p.cur().Kind]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseNumber() *ast.Node {
	tok := p.cur()
	p.advance()
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		evalerr.Raise(evalerr.Newf("invalid number literal %q", tok.Literal).At(tok.Pos))
	}
	return &ast.Node{Tag: ast.Num, Pos: tok.Pos, NumVal: v}
}

func (p *Parser) parseString() *ast.Node {
	tok := p.cur()
	p.advance()
	return &ast.Node{Tag: ast.Str, Pos: tok.Pos, StrVal: tok.Literal}
}

func (p *Parser) parseBool() *ast.Node {
	tok := p.cur()
	p.advance()
	return &ast.Node{Tag: ast.Bool, Pos: tok.Pos, BoolVal: tok.Kind == token.TRUE}
}

func (p *Parser) parseIdentifier() *ast.Node {
	tok := p.cur()
	p.advance()
	return &ast.Node{Tag: ast.Id, Pos: tok.Pos, IdVal: tok.Literal}
}

// parsePrefix handles unary `-x` (NEG) and `!x` (NOT).
func (p *Parser) parsePrefix() *ast.Node {
	opTok := p.cur()
	p.advance()
	operand := p.parseExpression(PREFIX)
	oper := ast.NEG
	if opTok.Kind == token.BANG {
		oper = ast.NOT
	}
	return &ast.Node{Tag: ast.OpTag, Pos: opTok.Pos, OpVal: &ast.OpData{Oper: oper, Ops: []*ast.Node{operand}}}
}

func (p *Parser) parseGroupedExpr() *ast.Node {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return expr
}

// parseBinOp builds a BINOP node; all binary operators are left-
// associative (spec.md §4.5/§6.1 does not specify associativity beyond
// standard arithmetic, and no script in spec.md §8.4 depends on
// right-associative `^`).
func (p *Parser) parseBinOp(left *ast.Node) *ast.Node {
	opTok := p.cur()
	prec := peekPrecedence(opTok.Kind)
	p.advance()
	right := p.parseExpression(prec)
	return &ast.Node{Tag: ast.OpTag, Pos: opTok.Pos, OpVal: &ast.OpData{Oper: ast.BINOP, SubOp: opTok.Kind, Ops: []*ast.Node{left, right}}}
}

// parseTernary handles `cond ? a : b` (spec.md §4.5).
func (p *Parser) parseTernary(cond *ast.Node) *ast.Node {
	pos := p.cur().Pos
	p.advance() // consume '?'
	thenExpr := p.parseExpression(LOWEST)
	p.expect(token.COLON)
	elseExpr := p.parseExpression(LOWEST)
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.TERN, Ops: []*ast.Node{cond, thenExpr, elseExpr}}}
}

// parseCall handles `name(args)` (spec.md §4.7 FNCT). left must be the
// unresolved Id the prefix parselet produced — Ex's FNCT case resolves
// it with Identify itself.
func (p *Parser) parseCall(left *ast.Node) *ast.Node {
	pos := p.cur().Pos
	p.advance() // consume '('
	args := p.parseArgList()
	p.expect(token.RPAREN)
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.FNCT, Ops: []*ast.Node{left, args}}}
}

// parseChain handles `left.name(args)` (spec.md §4.6.5).
func (p *Parser) parseChain(left *ast.Node) *ast.Node {
	pos := p.cur().Pos
	p.advance() // consume '.'
	nameTok := p.expect(token.IDENT)
	method := &ast.Node{Tag: ast.Id, Pos: nameTok.Pos, IdVal: nameTok.Literal}
	p.expect(token.LPAREN)
	args := p.parseArgList()
	p.expect(token.RPAREN)
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.CHAIN, Ops: []*ast.Node{left, method, args}}}
}

// parseArgList parses a comma-separated, possibly empty, Next-threaded
// argument list; each item is either a plain expression or a named
// `name = expr` OptArg (spec.md §3.1, §4.6.1).
func (p *Parser) parseArgList() *ast.Node {
	if p.curIs(token.RPAREN) {
		return nil
	}
	head := p.parseArg()
	tail := head
	for p.curIs(token.COMMA) {
		p.advance()
		n := p.parseArg()
		tail.Next = n
		tail = n
	}
	return head
}

func (p *Parser) parseArg() *ast.Node {
	if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
		nameTok := p.cur()
		p.advance() // ident
		p.advance() // '='
		value := p.parseExpression(LOWEST)
		return &ast.Node{Tag: ast.OptArg, Pos: nameTok.Pos, OptArgVal: &ast.OptArgData{Name: nameTok.Literal, Value: value}}
	}
	return p.parseExpression(LOWEST)
}

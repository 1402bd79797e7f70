package parser

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true,
	token.ADDEQ:  true,
	token.SUBEQ:  true,
	token.MULEQ:  true,
	token.DIVEQ:  true,
	token.POWEQ:  true,
	token.MODEQ:  true,
}

// parseStatement dispatches on the current token (spec.md §4.7's
// statement forms, plus the while/for supplement of SPEC_FULL.md §4.10).
func (p *Parser) parseStatement() *ast.Node {
	switch p.cur().Kind {
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.DEFAULT:
		return p.parseDefaultStmt()
	case token.LBRACE:
		return p.parseBlock()
	case token.IDENT:
		if p.peekIs(token.LPAREN) && p.looksLikeFnDef() {
			return p.parseFunctionDef()
		}
		return p.parseExprOrAssignStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

// looksLikeFnDef decides, by scanning to the matching ')', whether the
// parenthesized group after the current identifier is followed by a
// '{' — the one place mkvsynth's grammar needs lookahead past an
// unbounded span (spec.md has no explicit `function` keyword to
// disambiguate a definition from a call-expression statement).
func (p *Parser) looksLikeFnDef() bool {
	openIdx := p.pos + 1
	closeIdx := p.matchingParen(openIdx)
	if closeIdx == -1 {
		return false
	}
	next := closeIdx + 1
	return next < len(p.toks) && p.toks[next].Kind == token.LBRACE
}

// parseBlock parses a `{ stmt* }` block into a SEQ chain (nil for an
// empty block — spec.md §8.3 "empty function body returns the Fn
// sentinel").
func (p *Parser) parseBlock() *ast.Node {
	p.expect(token.LBRACE)
	var body *ast.Node
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if body == nil {
			body = stmt
		} else {
			body = ast.NewOp(ast.SEQ, body, stmt)
		}
	}
	p.expect(token.RBRACE)
	return body
}

func (p *Parser) parseIfStmt() *ast.Node {
	pos := p.cur().Pos
	p.advance() // 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	then := p.parseBlock()

	ops := []*ast.Node{cond, then}
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			ops = append(ops, p.parseIfStmt())
		} else {
			ops = append(ops, p.parseBlock())
		}
	}
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.IF, Ops: ops}}
}

func (p *Parser) parseWhileStmt() *ast.Node {
	pos := p.cur().Pos
	p.advance() // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.WHILE, Ops: []*ast.Node{cond, body}}}
}

func (p *Parser) parseForStmt() *ast.Node {
	pos := p.cur().Pos
	p.advance() // 'for'
	p.expect(token.LPAREN)
	init := p.parseSimpleStmt()
	p.expect(token.SEMI)
	cond := p.parseExpression(LOWEST)
	p.expect(token.SEMI)
	step := p.parseSimpleStmt()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.FOR, Ops: []*ast.Node{init, cond, step, body}}}
}

func (p *Parser) parseReturnStmt() *ast.Node {
	pos := p.cur().Pos
	p.advance() // 'return'
	var ops []*ast.Node
	if !p.curIs(token.SEMI) {
		ops = append(ops, p.parseExpression(LOWEST))
	}
	p.expect(token.SEMI)
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.RETURN, Ops: ops}}
}

// parseDefaultStmt handles `default name = expr;` (spec.md §4.8).
func (p *Parser) parseDefaultStmt() *ast.Node {
	pos := p.cur().Pos
	p.advance() // 'default'
	nameTok := p.expect(token.IDENT)
	target := &ast.Node{Tag: ast.Id, Pos: nameTok.Pos, IdVal: nameTok.Literal}
	p.expect(token.ASSIGN)
	value := p.parseExpression(LOWEST)
	p.expect(token.SEMI)
	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{Oper: ast.DEFAULT, Ops: []*ast.Node{target, value}}}
}

// parseExprOrAssignStmt parses `expr;` or `lhs op= rhs;` as a top-level
// statement, terminated with a semicolon.
func (p *Parser) parseExprOrAssignStmt() *ast.Node {
	stmt := p.parseSimpleStmt()
	p.expect(token.SEMI)
	return stmt
}

// parseSimpleStmt parses an assignment or bare expression without
// consuming a trailing terminator — used both for top-level statements
// and for a `for` loop's init/step clauses.
func (p *Parser) parseSimpleStmt() *ast.Node {
	expr := p.parseExpression(LOWEST)
	if assignOps[p.cur().Kind] {
		opTok := p.cur()
		p.advance()
		rhs := p.parseExpression(LOWEST)
		return &ast.Node{Tag: ast.OpTag, Pos: opTok.Pos, OpVal: &ast.OpData{Oper: ast.ASSIGN, SubOp: opTok.Kind, Ops: []*ast.Node{expr, rhs}}}
	}
	return expr
}

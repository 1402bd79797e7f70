package parser

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// paramDefault carries an inline default (`y=2` in a parameter list)
// until parseFunctionDef can desugar it into a `default` statement.
type paramDefault struct {
	name  string
	value *ast.Node
}

// parseFunctionDef parses `name(params) { body }` (spec.md §4.6.3
// setup). Inline optional defaults are desugared into a `default`
// statement prepended to the body (spec.md §4.8) rather than modeled as
// a separate AST shape — the evaluator never sees a difference between
// `y=2` declared in the parameter list and `default y = 2;` written as
// the body's first statement.
func (p *Parser) parseFunctionDef() *ast.Node {
	pos := p.cur().Pos
	nameTok := p.expect(token.IDENT)
	name := &ast.Node{Tag: ast.Id, Pos: nameTok.Pos, IdVal: nameTok.Literal}

	p.expect(token.LPAREN)
	params, defaults := p.parseParamList()
	p.expect(token.RPAREN)

	body := p.parseBlock()
	for i := len(defaults) - 1; i >= 0; i-- {
		d := defaults[i]
		defStmt := &ast.Node{Tag: ast.OpTag, OpVal: &ast.OpData{
			Oper: ast.DEFAULT,
			Ops:  []*ast.Node{ast.NewId(d.name), d.value},
		}}
		if body == nil {
			body = defStmt
		} else {
			body = ast.NewOp(ast.SEQ, defStmt, body)
		}
	}

	return &ast.Node{Tag: ast.OpTag, Pos: pos, OpVal: &ast.OpData{
		Oper: ast.FNDEF,
		Ops:  []*ast.Node{name, ast.FromSlice(params), body},
	}}
}

// parseParamList parses a comma-separated, possibly empty, parameter
// list into Var nodes plus any inline optional defaults found along the
// way (spec.md §4.6.2's mandatory/optional split happens later, in
// interp.SplitMandOpt, from the IsOptional flag set here).
func (p *Parser) parseParamList() ([]*ast.Node, []paramDefault) {
	var params []*ast.Node
	var defaults []paramDefault
	if p.curIs(token.RPAREN) {
		return params, defaults
	}
	for {
		param, def := p.parseParam()
		params = append(params, param)
		if def != nil {
			defaults = append(defaults, *def)
		}
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return params, defaults
}

// parseParam parses one parameter: an optional type keyword (spec.md
// §3.1's `type_tag`, concretely `num`/`bool`/`str`/`clip` — ast.AnyTag
// when omitted, matching every untyped-parameter script in spec.md
// §8.4), a name, and an optional inline default marking it optional.
func (p *Parser) parseParam() (*ast.Node, *paramDefault) {
	typeTag := ast.AnyTag
	switch p.cur().Kind {
	case token.NUMTYPE:
		typeTag = ast.Num
		p.advance()
	case token.BOOLTYPE:
		typeTag = ast.Bool
		p.advance()
	case token.STRTYPE:
		typeTag = ast.Str
		p.advance()
	case token.CLIPTYPE:
		typeTag = ast.Clip
		p.advance()
	}

	nameTok := p.expect(token.IDENT)
	v := &ast.Node{Tag: ast.VarTag, Pos: nameTok.Pos, VarVal: &ast.VarData{Name: nameTok.Literal, TypeTag: typeTag}}

	if p.curIs(token.ASSIGN) {
		p.advance()
		value := p.parseExpression(LOWEST)
		v.VarVal.IsOptional = true
		return v, &paramDefault{name: nameTok.Literal, value: value}
	}
	return v, nil
}

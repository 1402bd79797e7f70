// Package parser implements the mkvsynth parser using Pratt parsing:
// per-token-kind prefix and infix parse functions selected by binding
// power, the same shape as CWBudde-go-dws/internal/parser.
//
// mkvsynth's grammar is much smaller than DWScript's (no classes,
// records, units, exceptions), so this parser keeps the prefix/infix
// registration pattern but trades CWBudde-go-dws's streaming two-token
// cursor (curToken/peekToken pulled lazily from the lexer) for a
// pre-scanned token slice with an arbitrary-lookahead cursor. mkvsynth
// needs unbounded lookahead in exactly one place — telling a function
// definition `name(params) { ... }` apart from a call-expression
// statement `name(args);`, which only resolves after the matching ')'
// — and scripts are short pipeline descriptions, so scanning the whole
// token stream up front is simpler than a mark/reset cursor for the
// same result.
package parser

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/lexer"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	TERNARY  // ?:
	LOGIC    // || &&
	EQUALS   // == !=
	RELATION // > < >= <=
	SUM      // + -
	PRODUCT  // * / %
	PREFIX   // -x !x
	POWER    // ^
	CALL     // f(...)
	CHAIN    // a.f(...)
)

var precedences = map[token.Kind]int{
	token.QUESTION: TERNARY,
	token.LOR:      LOGIC,
	token.LAND:     LOGIC,
	token.EQ:       EQUALS,
	token.NE:       EQUALS,
	token.GT:       RELATION,
	token.LT:       RELATION,
	token.GE:       RELATION,
	token.LE:       RELATION,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.CARET:    POWER,
	token.LPAREN:   CALL,
	token.DOT:      CHAIN,
}

type (
	prefixParseFn func() *ast.Node
	infixParseFn  func(left *ast.Node) *ast.Node
)

// Parser turns a token stream into the ast.Node tree of spec.md §3.
type Parser struct {
	toks []token.Token
	pos  int

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New scans l to EOF and creates a Parser over the resulting tokens.
func New(l *lexer.Lexer) *Parser {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	p := &Parser{toks: toks}
	p.prefixFns = map[token.Kind]prefixParseFn{
		token.NUMBER: p.parseNumber,
		token.STRING: p.parseString,
		token.TRUE:   p.parseBool,
		token.FALSE:  p.parseBool,
		token.IDENT:  p.parseIdentifier,
		token.MINUS:  p.parsePrefix,
		token.BANG:   p.parsePrefix,
		token.LPAREN: p.parseGroupedExpr,
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseBinOp,
		token.MINUS:    p.parseBinOp,
		token.STAR:     p.parseBinOp,
		token.SLASH:    p.parseBinOp,
		token.PERCENT:  p.parseBinOp,
		token.CARET:    p.parseBinOp,
		token.EQ:       p.parseBinOp,
		token.NE:       p.parseBinOp,
		token.GT:       p.parseBinOp,
		token.LT:       p.parseBinOp,
		token.GE:       p.parseBinOp,
		token.LE:       p.parseBinOp,
		token.LOR:      p.parseBinOp,
		token.LAND:     p.parseBinOp,
		token.LPAREN:   p.parseCall,
		token.DOT:      p.parseChain,
		token.QUESTION: p.parseTernary,
	}
	return p
}

// cur is the token at the cursor; it is EOF forever once the cursor
// runs off the end, so callers never need a bounds check.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos]
}

// peekN returns the token n positions ahead of the cursor (peekN(1) is
// the token immediately after cur()).
func (p *Parser) peekN(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) advance() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur().Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekN(1).Kind == k }

func (p *Parser) expect(k token.Kind) token.Token {
	if !p.curIs(k) {
		evalerr.Raise(evalerr.Newf("expected %s, got %s", k, p.cur().Kind).At(p.cur().Pos))
	}
	tok := p.cur()
	p.advance()
	return tok
}

func peekPrecedence(k token.Kind) int {
	if prec, ok := precedences[k]; ok {
		return prec
	}
	return LOWEST
}

// matchingParen returns the index (into p.toks) of the ')' matching the
// '(' at index openIdx, or -1 if unbalanced.
func (p *Parser) matchingParen(openIdx int) int {
	depth := 0
	for i := openIdx; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return i
			}
		case token.EOF:
			return -1
		}
	}
	return -1
}

// ParseProgram parses an entire script into a single (possibly SEQ-
// chained) AST, the root handed to interp.Ex.
func (p *Parser) ParseProgram() *ast.Node {
	var program *ast.Node
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if program == nil {
			program = stmt
		} else {
			program = ast.NewOp(ast.SEQ, program, stmt)
		}
	}
	return program
}

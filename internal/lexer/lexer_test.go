package lexer

import (
	"testing"

	"github.com/ddushkinn/mkvsynth/internal/token"
)

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `x = 5 + 3.14; y += 1; z == 2 != 3 <= 4 >= 5 && true || false;`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.IDENT, "x"},
		{token.ASSIGN, ""},
		{token.NUMBER, "5"},
		{token.PLUS, ""},
		{token.NUMBER, "3.14"},
		{token.SEMI, ""},
		{token.IDENT, "y"},
		{token.ADDEQ, ""},
		{token.NUMBER, "1"},
		{token.SEMI, ""},
		{token.IDENT, "z"},
		{token.EQ, ""},
		{token.NUMBER, "2"},
		{token.NE, ""},
		{token.NUMBER, "3"},
		{token.LE, ""},
		{token.NUMBER, "4"},
		{token.GE, ""},
		{token.NUMBER, "5"},
		{token.LAND, ""},
		{token.TRUE, ""},
		{token.LOR, ""},
		{token.FALSE, ""},
		{token.SEMI, ""},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("token %d: expected kind %s, got %s (literal %q)", i, tt.kind, tok.Kind, tok.Literal)
		}
		if tt.literal != "" && tok.Literal != tt.literal {
			t.Fatalf("token %d: expected literal %q, got %q", i, tt.literal, tok.Literal)
		}
	}
}

func TestNextTokenTypeKeywords(t *testing.T) {
	l := New(`num bool str clip myClip`)
	want := []token.Kind{token.NUMTYPE, token.BOOLTYPE, token.STRTYPE, token.CLIPTYPE, token.IDENT}
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: expected %s, got %s", i, k, tok.Kind)
		}
	}
}

func TestNextTokenStringEscapesPreservedVerbatim(t *testing.T) {
	l := New(`"hello\nworld"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Kind)
	}
	if tok.Literal != `hello\nworld` {
		t.Fatalf("expected escape sequence preserved verbatim, got %q", tok.Literal)
	}
}

func TestNextTokenSkipsLineAndBlockComments(t *testing.T) {
	l := New("x // a comment\n/* block\ncomment */y")
	tok := l.NextToken()
	if tok.Kind != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT x, got %s %q", tok.Kind, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Kind != token.IDENT || tok.Literal != "y" {
		t.Fatalf("expected IDENT y, got %s %q", tok.Kind, tok.Literal)
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New(`@`)
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Kind)
	}
}

func TestNextTokenPositionTracksLineAndColumn(t *testing.T) {
	l := New("x\ny")
	first := l.NextToken()
	if first.Pos.Line != 1 {
		t.Fatalf("expected line 1, got %d", first.Pos.Line)
	}
	if first.Pos.Column != 1 {
		t.Fatalf("expected column 1, got %d", first.Pos.Column)
	}
	second := l.NextToken()
	if second.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", second.Pos.Line)
	}
	if second.Pos.Column != 1 {
		t.Fatalf("expected column 1, got %d", second.Pos.Column)
	}
}

package interp_test

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/interp"
	"github.com/ddushkinn/mkvsynth/internal/lexer"
	"github.com/ddushkinn/mkvsynth/internal/parser"
)

// evalSource parses and evaluates src in env, returning the final
// expression's value and any evaluation error raised along the way —
// mirrors CWBudde-go-dws/internal/interp's testEval helper, adapted to
// mkvsynth's panic/recover error channel instead of a parser.Errors() slice.
func evalSource(env *interp.Environment, src string) (result *ast.Node, err error) {
	defer evalerr.Recover(&err)
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	result = interp.Ex(env, prog)
	return result, nil
}

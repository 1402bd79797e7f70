package builtins

import (
	"math"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/interp"
)

// RegisterMath registers the single-argument numeric built-ins (spec.md
// §6.2), grounded on original_source/delbrot's nsin/ncos/nlog/nsqrt.
func RegisterMath(r *Registry) {
	r.Register("sin", mathFn("sin", math.Sin))
	r.Register("cos", mathFn("cos", math.Cos))
	r.Register("log", mathFn("log", math.Log))
	r.Register("sqrt", mathFn("sqrt", math.Sqrt))
}

// mathFn builds a CoreFunc around a one-argument float64 function,
// checking that the single argument is a Num (spec.md §6.2/§4.9).
func mathFn(name string, f func(float64) float64) ast.CoreFunc {
	return func(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
		interp.CheckArgs(name, args, ast.Num)
		result.Tag = ast.Num
		result.NumVal = f(args.NumVal)
		return result
	}
}

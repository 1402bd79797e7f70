package builtins

import (
	"fmt"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/graph"
	"github.com/ddushkinn/mkvsynth/internal/interp"
)

// RegisterSystem registers assert and go, the two built-ins that reach
// outside pure evaluation: assert raises on a failed invariant, go hands
// the script's registered filter chains off to the graph runtime
// (spec.md §5, §6.2), grounded on original_source/delbrot's assert and
// go_AST.
func RegisterSystem(r *Registry) {
	r.Register("assert", coreAssert)
	r.Register("go", coreGo)
}

// coreAssert raises with the given message, verbatim, if cond is false.
// The message is reported as a literal string rather than a printf
// format (the original passes the user's string straight to its varargs
// error reporter with no arguments — mkvsynth avoids that footgun by
// using evalerr.New instead of evalerr.Newf).
func coreAssert(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
	interp.CheckArgs("assert", args, ast.Bool, ast.Str)
	cond := args
	msg := args.Next
	if !cond.BoolVal {
		evalerr.Raise(evalerr.New(msg.StrVal))
	}
	return sentinel(result, "assert")
}

// coreGo hands every filter chain registered so far to the graph
// runtime and blocks until they all complete (spec.md §5 "go() is the
// sole concurrency boundary... everything before it runs single
// threaded; go() hands the accumulated filter graph to a separate
// runtime and blocks until that runtime finishes"). The runtime is
// installed into the global environment's services by
// internal/runner before a script runs.
func coreGo(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
	interp.CheckArgs("go", args)

	v, ok := env.Global().Get("graph")
	if !ok {
		evalerr.Raisef("go() called with no filter graph runtime configured")
	}
	rt, ok := v.(*graph.Runtime)
	if !ok {
		evalerr.Raisef("go() found a malformed filter graph runtime")
	}

	fmt.Println("Initiating Multithreaded Filters")
	rt.Spawn()
	fmt.Println("All filters are running")
	if err := rt.Join(); err != nil {
		evalerr.Raisef("filter graph failed: %s", err)
	}
	fmt.Println("All filters have completed")

	return sentinel(result, "go")
}

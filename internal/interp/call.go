package interp

import (
	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

// returnSignal is panicked by a RETURN statement and recovered exactly at
// the userDefFnCall frame that installed the anchor for it — the Go
// stand-in for the original's setjmp/longjmp per-frame return anchor
// (spec.md §4.6.3 steps 7/10, §5, §9 "Non-local return").
type returnSignal struct {
	value *ast.Node
}

// SplitMandOpt splits a slice of Var (parameter) or OptArg
// (argument) nodes into a mandatory prefix and an optional tail, scanning
// once (spec.md §4.6.2). It fails if a mandatory entry follows an
// optional one.
func SplitMandOpt(list []*ast.Node) (mand, opts []*ast.Node) {
	seenOptional := false
	for _, n := range list {
		if isOptionalEntry(n) {
			seenOptional = true
			opts = append(opts, n)
		} else {
			if seenOptional {
				evalerr.Raisef("optional must follow mandatory")
			}
			mand = append(mand, n)
		}
	}
	return mand, opts
}

func isOptionalEntry(n *ast.Node) bool {
	switch n.Tag {
	case ast.VarTag:
		return n.VarVal.IsOptional
	case ast.OptArg:
		return true
	default:
		return false
	}
}

// FuncDefine processes a function definition (spec.md §4.6.3 setup,
// §4.7's FNDEF dispatch): name must be an unresolved Id, params is the
// parameter list as a slice of Var nodes, body is the unevaluated AST.
func FuncDefine(e *Environment, name *ast.Node, params []*ast.Node, body *ast.Node) {
	mand, opts := SplitMandOpt(params)

	fn := &ast.Node{
		Tag: ast.FnTag,
		FnVal: &ast.FnData{
			Name:   name.IdVal,
			Params: mand,
			Opts:   opts,
			Body:   body,
		},
	}
	e.PutFn(name.IdVal, fn)
}

// ReduceArgs evaluates a Next-threaded argument list right-to-left
// (spec.md §4.6.1): each node is evaluated; if the result is an OptArg,
// its carried value is further evaluated; the original Next topology is
// restored. Right-to-left is a permitted implementation choice —
// callers must not rely on left-to-right side effects between arguments.
func ReduceArgs(e *Environment, head *ast.Node) *ast.Node {
	if head == nil {
		return nil
	}
	next := ReduceArgs(e, head.Next)
	p := Ex(e, head)
	if p.Tag == ast.OptArg {
		p.OptArgVal.Value = Ex(e, p.OptArgVal.Value)
	}
	p.Next = next
	return p
}

// UserDefFnCall implements spec.md §4.6.3.
func UserDefFnCall(caller *Environment, fnNode *ast.Node, args *ast.Node) (result *ast.Node) {
	frame := NewChild(caller)

	for _, param := range fnNode.FnVal.Params {
		frame.PutVar(param.VarVal.Name)
	}
	for _, opt := range fnNode.FnVal.Opts {
		v := frame.PutVar(opt.VarVal.Name)
		v.VarVal.IsOptional = true
	}

	argSlice := ast.ToSlice(args)
	mandArgs, optArgs := SplitMandOpt(argSlice)

	if len(mandArgs) != len(fnNode.FnVal.Params) {
		n := len(fnNode.FnVal.Params)
		plural := "s"
		if n == 1 {
			plural = ""
		}
		evalerr.Raisef("%s expected %d mandatory argument%s, got %d", fnNode.FnVal.Name, n, plural, len(mandArgs))
	}

	for i, param := range fnNode.FnVal.Params {
		arg := mandArgs[i]
		if param.VarVal.TypeTag != ast.AnyTag && param.VarVal.TypeTag != arg.Tag {
			evalerr.Raisef("type mismatch: arg %d of %s expected %s, got %s", i+1, fnNode.FnVal.Name, param.VarVal.TypeTag, arg.Tag)
		}
	}
	for i, param := range fnNode.FnVal.Params {
		Assign(frame.GetVar(param.VarVal.Name), token.ASSIGN, mandArgs[i])
	}

	for _, arg := range optArgs {
		var match *ast.Node
		for _, opt := range fnNode.FnVal.Opts {
			if opt.VarVal.Name == arg.OptArgVal.Name {
				match = opt
				break
			}
		}
		if match == nil {
			evalerr.Raisef("%s is not an optional parameter of function %s", arg.OptArgVal.Name, fnNode.FnVal.Name)
		}
		if match.VarVal.TypeTag != ast.AnyTag && match.VarVal.TypeTag != arg.OptArgVal.Value.Tag {
			evalerr.Raisef("type mismatch: opt arg %s of %s expected %s, got %s", match.VarVal.Name, fnNode.FnVal.Name, match.VarVal.TypeTag, arg.OptArgVal.Value.Tag)
		}
		Assign(frame.GetVar(match.VarVal.Name), token.ASSIGN, arg.OptArgVal.Value)
	}

	result = &ast.Node{Tag: ast.FnTag, FnVal: &ast.FnData{Name: fnNode.FnVal.Name, IsCore: true}}

	func() {
		defer func() {
			if r := recover(); r != nil {
				if sig, ok := r.(returnSignal); ok {
					if sig.value != nil {
						result = sig.value
					}
					return
				}
				panic(r)
			}
		}()
		Ex(frame, ast.Copy(fnNode.FnVal.Body))
	}()

	return result
}

// FnctCall dispatches a resolved call: user-defined functions run through
// UserDefFnCall, core (built-in) functions run through their CoreFunc
// pointer (spec.md §4.6.4).
func FnctCall(e *Environment, fnNode *ast.Node, args *ast.Node) *ast.Node {
	if fnNode.Tag == ast.VarTag {
		evalerr.Raisef("reference to undefined function \"%s\"", fnNode.VarVal.Name)
	}
	if fnNode.Tag != ast.FnTag {
		evalerr.Raisef("expected function name before '(' (got %s)", fnNode.Tag)
	}

	if fnNode.FnVal.IsCore {
		result := &ast.Node{}
		return fnNode.FnVal.Core(e, result, args)
	}
	return UserDefFnCall(e, fnNode, args)
}

// CheckArgs validates that args holds exactly len(types) positional
// arguments matching types in order, optionally followed by a run of
// OptArg nodes (spec.md §4.9). funcName is used in error messages.
func CheckArgs(funcName string, args *ast.Node, types ...ast.Tag) {
	traverse := args
	for i, want := range types {
		if traverse == nil {
			n := len(types)
			plural := "s"
			if n == 1 {
				plural = ""
			}
			evalerr.Raisef("%s expected %d argument%s, got %d", funcName, n, plural, i)
		}
		if traverse.Tag != want {
			evalerr.Raisef("type mismatch: arg %d of %s expected %s, got %s", i+1, funcName, want, traverse.Tag)
		}
		traverse = traverse.Next
	}
	if traverse != nil && traverse.Tag != ast.OptArg {
		n := len(types)
		i := n
		for cur := traverse; cur != nil; cur = cur.Next {
			i++
		}
		plural := "s"
		if n == 1 {
			plural = ""
		}
		evalerr.Raisef("%s expected %d argument%s, got %d", funcName, n, plural, i)
	}
}

// GetOptArg scans args for an OptArg named name whose value has the given
// type tag, returning that value node or nil if absent (spec.md §4.9).
func GetOptArg(args *ast.Node, name string, wantType ast.Tag) *ast.Node {
	for traverse := args; traverse != nil; traverse = traverse.Next {
		if traverse.Tag == ast.OptArg && traverse.OptArgVal.Name == name {
			if traverse.OptArgVal.Value.Tag != wantType {
				evalerr.Raisef("type mismatch: optional argument \"%s\" expected %s, got %s", name, wantType, traverse.OptArgVal.Value.Tag)
			}
			return traverse.OptArgVal.Value
		}
	}
	return nil
}

package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/evalerr"
	"github.com/ddushkinn/mkvsynth/internal/interp"
)

// RegisterIO registers print, show, and read — the script-visible text
// I/O surface (spec.md §6.2), grounded on original_source/delbrot's
// nprint/nshow/nread.
func RegisterIO(r *Registry) {
	r.Register("print", corePrint)
	r.Register("show", coreShow)
	r.Register("read", coreRead)
}

// corePrint accepts any number of Num/Bool/Str arguments, writes their
// display form to stdout space-separated with a trailing newline, and
// returns the Fn sentinel (spec.md §6.2, §6.3).
func corePrint(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
	first := true
	for a := args; a != nil; a = a.Next {
		if !first {
			fmt.Print(" ")
		}
		first = false
		fmt.Print(display(a))
	}
	fmt.Println()
	return sentinel(result, "print")
}

// coreShow renders exactly one Num/Bool value the way print would, or a
// Str's raw (not escape-resolved) form, returning it instead of writing
// it (spec.md §6.2, §6.3's "when a Str is printed" scopes escape
// resolution to print, grounded on nshow, which returns args->str with
// no call to unesc()).
func coreShow(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
	if args == nil || args.Next != nil {
		evalerr.Raisef("show expected 1 argument")
	}
	switch args.Tag {
	case ast.Str:
		result.Tag = ast.Str
		result.StrVal = args.StrVal
		return result
	case ast.Num, ast.Bool:
		result.Tag = ast.Str
		result.StrVal = display(args)
		return result
	default:
		evalerr.Raisef("show expected number, boolean, or string, got %s", args.Tag)
		return nil
	}
}

// coreRead parses a Str argument as a number, the way C's atof is
// permissive: the longest numeric prefix is read and the rest ignored,
// and a string with no valid numeric prefix reads as 0 rather than
// raising an error (spec.md §6.2, grounded on nread).
func coreRead(env ast.Env, result *ast.Node, args *ast.Node) *ast.Node {
	interp.CheckArgs("read", args, ast.Str)
	s := strings.TrimSpace(args.StrVal)
	v := 0.0
	for end := len(s); end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			v = f
			break
		}
	}
	result.Tag = ast.Num
	result.NumVal = v
	return result
}

// display renders a single value node as print/show show it: Num with
// %.10g, Bool as True/False, Str with its backslash escapes resolved
// (spec.md §6.3 "resolved lazily, only when printed").
func display(n *ast.Node) string {
	switch n.Tag {
	case ast.Num:
		return strconv.FormatFloat(n.NumVal, 'g', 10, 64)
	case ast.Bool:
		if n.BoolVal {
			return "True"
		}
		return "False"
	case ast.Str:
		return unescape(n.StrVal)
	default:
		return fmt.Sprintf("<%s>", n.Tag)
	}
}

// unescape resolves the backslash escapes a string literal carries
// verbatim until display time (spec.md §6.3). Any backslash pair other
// than \n \t \r \\ \' \" is a fatal "unknown literal" error (spec.md §7),
// grounded on original_source/delbrot/delbrot.c's unesc() default case.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			evalerr.Raisef("unknown literal \"\\%c\"", s[i])
		}
	}
	return b.String()
}

// sentinel builds the Fn-tagged placeholder result a side-effecting
// built-in returns when it has no meaningful value (mirrors
// interp.UserDefFnCall's default result for a function with no return).
func sentinel(result *ast.Node, name string) *ast.Node {
	result.Tag = ast.FnTag
	result.FnVal = &ast.FnData{Name: name, IsCore: true}
	return result
}

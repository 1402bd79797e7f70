// Package evalerr is the evaluator's single error-reporting channel
// (spec.md §7: "Errors form one flat kind: evaluation error... The
// evaluator has exactly one escape hatch: on error, it reports the
// message and terminates the current script run.").
//
// Grounded on CWBudde-go-dws/internal/interp/errors/errors.go (one error
// struct, printf-style constructors, optional source position) collapsed
// to the single category spec.md mandates — mkvsynth has no Type/Runtime/
// Undefined/Contract/Internal split, just "evaluation error".
package evalerr

import (
	"fmt"

	"github.com/ddushkinn/mkvsynth/internal/token"
)

// Error is the one error kind the evaluator ever produces.
type Error struct {
	Message string
	Pos     *token.Position
}

func (e *Error) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("mkvsynth: line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("mkvsynth: %s", e.Message)
}

// New creates an Error with a literal message and no position.
func New(message string) *Error {
	return &Error{Message: message}
}

// Newf creates an Error with a printf-formatted message, mirroring the
// original source's `MkvsynthError(fmt, ...)` varargs reporter.
func Newf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// At attaches a source position to an Error and returns it, for use at the
// point an error is raised from an AST node that carries position info.
func (e *Error) At(pos token.Position) *Error {
	e.Pos = &pos
	return e
}

// Raise is the evaluator's sole escape hatch: it panics with err, to be
// recovered exactly once at the top of a script run (the Go stand-in for
// the original's setjmp/longjmp-free fatal abort — spec.md §7 "Errors do
// not unwind to a user-visible handler").
func Raise(err *Error) {
	panic(err)
}

// Raisef is a convenience for Raise(Newf(...)).
func Raisef(format string, args ...any) {
	panic(Newf(format, args...))
}

// Recover should be deferred once, at the boundary that runs a whole
// script (the CLI's `run` command, or a test harness). It converts a
// panicked *Error into a returned error; any other panic value continues
// to propagate, since only evalerr.Error is a conforming evaluation error.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*errp = e
			return
		}
		panic(r)
	}
}

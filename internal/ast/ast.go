// Package ast defines the mkvsynth AST: a single tagged-variant Node type
// (spec.md §3.1) used both as the parse tree and, once reduced, as the
// runtime value representation the evaluator operates on.
//
// Grounded on original_source/delbrot/delbrot.c's ASTnode union (Num, Bool,
// Str, Clip, Id, Var, OptArg, Fn, Op, with a `next` sibling link), reshaped
// into Go as one struct per node kind instead of a C union, the way the
// teacher's pkg/ast models each expression/statement as its own struct
// behind a common interface — except mkvsynth keeps the single-struct,
// tag-switched shape because the evaluator (per spec.md §4) dispatches on
// the tag directly rather than through a visitor.
package ast

import "github.com/ddushkinn/mkvsynth/internal/token"

// Tag identifies which payload of a Node is valid.
type Tag int

const (
	Num Tag = iota
	Bool
	Str
	Clip
	Id
	VarTag
	OptArg
	FnTag
	OpTag
)

// AnyTag marks a parameter declared with no type keyword: every script in spec.md §8.4 writes untyped parameters
// (`f(a, b)`), so a mandatory parameter's declared type is optional in
// the concrete syntax; AnyTag in VarData.TypeTag means "skip the
// positional type check" rather than "match no argument".
const AnyTag Tag = -1

func (t Tag) String() string {
	switch t {
	case Num:
		return "number"
	case Bool:
		return "boolean"
	case Str:
		return "string"
	case Clip:
		return "clip"
	case Id:
		return "identifier"
	case VarTag:
		return "variable"
	case OptArg:
		return "optional argument"
	case FnTag:
		return "function"
	case OpTag:
		return "operation"
	case AnyTag:
		return "any"
	default:
		return "unknown"
	}
}

// OpCode identifies the operation an OpTag node performs — the mkvsynth
// analogue of the C source's integer `oper` tag (spec.md §6.1).
type OpCode int

const (
	FNDEF OpCode = iota
	IF
	FNCT
	CHAIN
	DEFAULT
	RETURN
	ASSIGN
	BINOP
	TERN
	NEG
	NOT
	SEQ   // `;`
	WHILE // supplemented, spec.md Open Question (c) / SPEC_FULL.md §4.10
	FOR   // supplemented, spec.md Open Question (c) / SPEC_FULL.md §4.10
)

// ClipData is the opaque handle a filter built-in hands back (spec.md §3.1
// "Clip"). Input chains to the upstream clip a filter was applied to, the
// way method-chain sugar (§4.6.5) wires `a.f(...)`. Handle is owned by
// whichever filter/graph-runtime package produced it; the evaluator never
// looks inside it.
type ClipData struct {
	Input  *Node
	Handle any
}

// VarData is the Var payload (spec.md §3.1): a named binding whose Value
// is nil until assigned.
type VarData struct {
	Name       string
	TypeTag    Tag
	Value      *Node
	IsOptional bool
}

// OptArgData is the OptArg payload: a named argument carrier of the form
// `name = expr` (spec.md §3.1, §4.6.1).
type OptArgData struct {
	Name  string
	Value *Node
}

// CoreFunc is the signature of a built-in's implementation (spec.md §6.2):
// given a pre-allocated result node and the (already-reduced) argument
// list, mutate and return the result. env is the calling Env, needed by
// built-ins such as `go()` that reach into ambient runtime state.
type CoreFunc func(env Env, result *Node, args *Node) *Node

// Env is the minimal surface builtins need from an evaluator Environment;
// defined here (rather than imported from internal/interp) to avoid an
// import cycle between ast and interp.
type Env interface {
	Global() Env
	Put(key string, value any)
	Get(key string) (any, bool)
}

// FnInstaller is the minimal surface a builtin/filter registry needs to
// populate the global function namespace at startup (spec.md §9 "Built-in
// registration: a static table of (name, function pointer) populates the
// global function namespace... keep this table the sole extension point
// from filter plugins to the evaluator"). *interp.Environment satisfies
// this directly; the interface lives here so internal/interp/builtins and
// internal/filters need not import internal/interp.
type FnInstaller interface {
	PutFn(name string, fn *Node)
}

// FnData is the Fn payload: either a user-defined function (Body +
// Params/Opts, spec.md §3.1) or a core (built-in) function (Core).
type FnData struct {
	Name   string
	IsCore bool

	// user function
	Params []*Node // Var nodes, mandatory parameters
	Opts   []*Node // Var nodes, optional parameters
	Body   *Node

	// core function
	Core CoreFunc
}

// OpData is the Op payload: an operator/statement node. Ops holds the
// child AST nodes in the order spec.md's component design describes for
// each OpCode (see doc comments on ex() dispatch in internal/interp).
// SubOp carries the ASSIGN/BINOP sub-operator (spec.md §6.1); it is the Go
// equivalent of the C source threading the op-code as a numeric child.
type OpData struct {
	Oper  OpCode
	SubOp token.Kind
	Ops   []*Node
}

// Node is the universal tagged cell: AST node and, post-evaluation,
// runtime value. Next threads sibling nodes in argument and parameter
// lists (spec.md §3.1): "next link used to thread argument and parameter
// lists... not part of the node's semantic value".
type Node struct {
	Tag Tag
	Pos token.Position
	Next *Node

	NumVal  float64
	BoolVal bool
	StrVal  string
	ClipVal *ClipData
	IdVal   string

	VarVal    *VarData
	OptArgVal *OptArgData
	FnVal     *FnData
	OpVal     *OpData
}

// NewNum, NewBool, NewStr construct leaf value nodes.
func NewNum(v float64) *Node  { return &Node{Tag: Num, NumVal: v} }
func NewBool(v bool) *Node    { return &Node{Tag: Bool, BoolVal: v} }
func NewStr(v string) *Node   { return &Node{Tag: Str, StrVal: v} }
func NewId(name string) *Node { return &Node{Tag: Id, IdVal: name} }

// NewOp constructs an Op node with the given children.
func NewOp(oper OpCode, ops ...*Node) *Node {
	return &Node{Tag: OpTag, OpVal: &OpData{Oper: oper, Ops: ops}}
}

// NewVar constructs a fresh, undefined Var node.
func NewVar(name string) *Node {
	return &Node{Tag: VarTag, VarVal: &VarData{Name: name}}
}

// Storable reports whether a node's tag is one of the types that may be
// stored in a Var (spec.md §3.1 invariant: Num/Bool/Str/Clip/Fn).
func (n *Node) Storable() bool {
	switch n.Tag {
	case Num, Bool, Str, Clip, FnTag:
		return true
	default:
		return false
	}
}

// Append links a node onto the end of a Next-threaded list, returning the
// list's head (head may be nil, in which case n becomes the head).
func Append(head, n *Node) *Node {
	if head == nil {
		return n
	}
	cur := head
	for cur.Next != nil {
		cur = cur.Next
	}
	cur.Next = n
	return head
}

// ToSlice flattens a Next-threaded list into a slice, leaving the original
// list topology untouched.
func ToSlice(head *Node) []*Node {
	var out []*Node
	for n := head; n != nil; n = n.Next {
		out = append(out, n)
	}
	return out
}

// FromSlice builds a Next-threaded list from a slice, in order. It does
// not copy the nodes; it only links them.
func FromSlice(nodes []*Node) *Node {
	var head, tail *Node
	for _, n := range nodes {
		n.Next = nil
		if head == nil {
			head = n
			tail = n
		} else {
			tail.Next = n
			tail = n
		}
	}
	return head
}

// Len counts a Next-threaded list.
func Len(head *Node) int {
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

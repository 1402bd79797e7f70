package ast

// Copy produces a structurally independent duplicate of n (spec.md §4.1),
// following the exact aliasing rule original_source/delbrot/delbrot.c's
// copy() has: a plain `memcpy(dup, p, sizeof(ASTnode))` duplicates the
// whole tagged-union struct by value, so a Var/OptArg/Fn node's *nested*
// pointer (Var.value, OptArg.value, Fn.body/params/opts) is carried over
// unchanged — aliased, not deep-copied. Only two things recurse: an Op
// node's children (`dup->op.ops[i] = copy(p->op.ops[i])`) and the `next`
// sibling link (`dup->next = copy(dup->next)`).
//
// This aliasing is not an oversight to "fix" — it is load-bearing.
// Identify (spec.md §4.2) returns copy(var_node) specifically "so the
// caller sees a Var, not the storage itself", and Assign (§4.4) then
// writes through that copy's Value pointer into the *same* storage the
// environment's table entry points to. If Copy deep-copied Value, an
// assignment made through an identified copy would never be visible to a
// later dereference of the same variable, breaking invariant §8.1.3.
// Likewise, a Fn node's Params/Opts/Body are shared across every call;
// only the per-call `copy(body)` in UserDefFnCall (itself an Op tree,
// so it deep-copies) produces the independent copy each call executes.
func Copy(n *Node) *Node {
	if n == nil {
		return nil
	}

	dup := new(Node)
	*dup = *n // shallow: copies every field, including the VarVal/OptArgVal/FnVal/OpVal pointers themselves

	if n.ClipVal != nil {
		c := *n.ClipVal
		dup.ClipVal = &c
	}
	if n.VarVal != nil {
		v := *n.VarVal // new VarData struct; v.Value still points at the original storage
		dup.VarVal = &v
	}
	if n.OptArgVal != nil {
		o := *n.OptArgVal // new OptArgData struct; o.Value aliased
		dup.OptArgVal = &o
	}
	if n.FnVal != nil {
		f := *n.FnVal // new FnData struct; Params/Opts/Body aliased
		dup.FnVal = &f
	}
	if n.OpVal != nil {
		o := *n.OpVal
		o.Ops = make([]*Node, len(n.OpVal.Ops))
		for i, child := range n.OpVal.Ops {
			o.Ops[i] = Copy(child)
		}
		dup.OpVal = &o
	}

	dup.Next = Copy(n.Next)
	return dup
}

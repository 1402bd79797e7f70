package ast

import "testing"

func TestCopyAliasesVarValuePointer(t *testing.T) {
	v := NewVar("x")
	v.VarVal.Value = NewNum(5)

	dup := Copy(v)
	if dup.VarVal == v.VarVal {
		t.Fatal("expected Copy to allocate a new VarData struct")
	}
	if dup.VarVal.Value != v.VarVal.Value {
		t.Fatal("expected Copy to alias the original Value pointer, not deep-copy it")
	}
}

func TestCopyDeepCopiesOpChildren(t *testing.T) {
	op := NewOp(BINOP, NewNum(1), NewNum(2))
	dup := Copy(op)
	if dup.OpVal == op.OpVal {
		t.Fatal("expected a new OpData")
	}
	if dup.OpVal.Ops[0] == op.OpVal.Ops[0] {
		t.Fatal("expected Op children to be deep-copied")
	}
	if dup.OpVal.Ops[0].NumVal != 1 {
		t.Fatalf("expected copied child to carry the same value, got %v", dup.OpVal.Ops[0].NumVal)
	}
}

func TestCopyRecursesIntoNext(t *testing.T) {
	head := NewNum(1)
	head.Next = NewNum(2)
	dup := Copy(head)
	if dup.Next == head.Next {
		t.Fatal("expected Next chain to be deep-copied")
	}
	if dup.Next.NumVal != 2 {
		t.Fatalf("expected second element preserved, got %v", dup.Next.NumVal)
	}
}

func TestCopyNilIsNil(t *testing.T) {
	if Copy(nil) != nil {
		t.Fatal("expected Copy(nil) to return nil")
	}
}

func TestStorable(t *testing.T) {
	tests := []struct {
		n    *Node
		want bool
	}{
		{NewNum(1), true},
		{NewBool(true), true},
		{NewStr("x"), true},
		{&Node{Tag: Clip}, true},
		{&Node{Tag: FnTag}, true},
		{NewId("x"), false},
		{NewVar("x"), false},
	}
	for _, tt := range tests {
		if got := tt.n.Storable(); got != tt.want {
			t.Errorf("Storable(%s) = %v, want %v", tt.n.Tag, got, tt.want)
		}
	}
}

func TestAppendToNilHead(t *testing.T) {
	n := NewNum(1)
	if got := Append(nil, n); got != n {
		t.Fatal("expected Append(nil, n) to return n")
	}
}

func TestAppendToExistingList(t *testing.T) {
	head := NewNum(1)
	head.Next = NewNum(2)
	tail := NewNum(3)
	Append(head, tail)
	if Len(head) != 3 {
		t.Fatalf("expected length 3, got %d", Len(head))
	}
}

func TestToSliceAndFromSliceRoundTrip(t *testing.T) {
	head := NewNum(1)
	head.Next = NewNum(2)
	head.Next.Next = NewNum(3)

	s := ToSlice(head)
	if len(s) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(s))
	}
	// original topology must survive ToSlice
	if Len(head) != 3 {
		t.Fatal("ToSlice must not mutate the original list")
	}

	rebuilt := FromSlice(s)
	if Len(rebuilt) != 3 {
		t.Fatalf("expected rebuilt length 3, got %d", Len(rebuilt))
	}
	if rebuilt.NumVal != 1 || rebuilt.Next.NumVal != 2 || rebuilt.Next.Next.NumVal != 3 {
		t.Fatal("expected FromSlice to preserve order")
	}
}

func TestTagString(t *testing.T) {
	if Num.String() != "number" {
		t.Fatalf("expected \"number\", got %q", Num.String())
	}
	if AnyTag.String() != "any" {
		t.Fatalf("expected \"any\", got %q", AnyTag.String())
	}
}

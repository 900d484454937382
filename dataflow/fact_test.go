package dataflow_test

import (
	"testing"

	"github.com/xinchen-jzx/tai-e-go/dataflow"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

func TestCPFactAbsentKeyIsUndef(t *testing.T) {
	f := dataflow.NewCPFact()
	v := ir.NewVar("x", ir.Int)
	if got := f.Get(v); !got.IsUndef() {
		t.Errorf("Get on unbound var = %v, want Undef", got)
	}
}

func TestCPFactUpdateToUndefRemovesKey(t *testing.T) {
	f := dataflow.NewCPFact()
	v := ir.NewVar("x", ir.Int)
	f.Update(v, dataflow.Constant(1))
	if len(f.Vars()) != 1 {
		t.Fatalf("expected one bound var after Update, got %d", len(f.Vars()))
	}
	f.Update(v, dataflow.Undef())
	if len(f.Vars()) != 0 {
		t.Errorf("expected no bound vars after Update to Undef, got %d", len(f.Vars()))
	}
}

func TestCPFactCopyIsIndependent(t *testing.T) {
	f := dataflow.NewCPFact()
	v := ir.NewVar("x", ir.Int)
	f.Update(v, dataflow.Constant(1))

	cp := f.Copy()
	cp.Update(v, dataflow.Constant(2))

	if got := f.Get(v); got.AsConstant() != 1 {
		t.Errorf("original fact mutated by copy's update: got %v", got)
	}
	if got := cp.Get(v); got.AsConstant() != 2 {
		t.Errorf("copy.Get(v) = %v, want Const(2)", got)
	}
}

func TestCPFactEqual(t *testing.T) {
	x, y := ir.NewVar("x", ir.Int), ir.NewVar("y", ir.Int)

	a := dataflow.NewCPFact()
	a.Update(x, dataflow.Constant(1))
	a.Update(y, dataflow.NAC())

	b := dataflow.NewCPFact()
	b.Update(y, dataflow.NAC())
	b.Update(x, dataflow.Constant(1))

	if !a.Equal(b) {
		t.Errorf("facts with the same bindings in different insertion order compared unequal")
	}

	b.Update(x, dataflow.Constant(2))
	if a.Equal(b) {
		t.Errorf("facts with different bindings compared equal")
	}
}

func TestMeetIntoLeavesDstOnlyKeysUntouched(t *testing.T) {
	x, y := ir.NewVar("x", ir.Int), ir.NewVar("y", ir.Int)

	src := dataflow.NewCPFact()
	src.Update(x, dataflow.Constant(1))

	dst := dataflow.NewCPFact()
	dst.Update(y, dataflow.Constant(2))

	changed := dataflow.MeetInto(src, dst)
	if !changed {
		t.Errorf("MeetInto should report change when introducing a new binding")
	}
	if got := dst.Get(y); got.AsConstant() != 2 {
		t.Errorf("dst-only key y was touched: got %v", got)
	}
	if got := dst.Get(x); got.AsConstant() != 1 {
		t.Errorf("dst.Get(x) after MeetInto = %v, want Const(1)", got)
	}
}

func TestMeetIntoNoChangeWhenFixedPoint(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	src := dataflow.NewCPFact()
	src.Update(x, dataflow.Constant(1))
	dst := src.Copy()

	if dataflow.MeetInto(src, dst) {
		t.Errorf("MeetInto reported change when dst already equaled the meet")
	}
}

func TestSetFactMembership(t *testing.T) {
	v := ir.NewVar("x", ir.Int)
	s := dataflow.NewSetFact[*ir.Var]()
	if s.Contains(v) {
		t.Errorf("empty set contains v")
	}
	if !s.Add(v) {
		t.Errorf("Add reported no change on first insertion")
	}
	if s.Add(v) {
		t.Errorf("Add reported change on duplicate insertion")
	}
	if !s.Contains(v) {
		t.Errorf("set does not contain v after Add")
	}
}

package dataflow_test

import (
	"testing"

	"github.com/xinchen-jzx/tai-e-go/dataflow"
)

func TestMeetIdentityAndAbsorbing(t *testing.T) {
	c := dataflow.Constant(7)
	if got := dataflow.Meet(dataflow.Undef(), c); !got.Equal(c) {
		t.Errorf("Meet(Undef, Const(7)) = %v, want %v", got, c)
	}
	if got := dataflow.Meet(c, dataflow.Undef()); !got.Equal(c) {
		t.Errorf("Meet(Const(7), Undef) = %v, want %v", got, c)
	}
	if got := dataflow.Meet(dataflow.NAC(), c); !got.IsNAC() {
		t.Errorf("Meet(NAC, Const(7)) = %v, want NAC", got)
	}
	if got := dataflow.Meet(c, dataflow.NAC()); !got.IsNAC() {
		t.Errorf("Meet(Const(7), NAC) = %v, want NAC", got)
	}
}

func TestMeetEqualAndUnequalConstants(t *testing.T) {
	a, b := dataflow.Constant(3), dataflow.Constant(3)
	if got := dataflow.Meet(a, b); !got.Equal(a) {
		t.Errorf("Meet(Const(3), Const(3)) = %v, want Const(3)", got)
	}
	c := dataflow.Constant(4)
	if got := dataflow.Meet(a, c); !got.IsNAC() {
		t.Errorf("Meet(Const(3), Const(4)) = %v, want NAC", got)
	}
}

func TestMeetCommutative(t *testing.T) {
	values := []dataflow.Value{dataflow.Undef(), dataflow.NAC(), dataflow.Constant(1), dataflow.Constant(2)}
	for _, a := range values {
		for _, b := range values {
			if ab, ba := dataflow.Meet(a, b), dataflow.Meet(b, a); !ab.Equal(ba) {
				t.Errorf("Meet(%v, %v) = %v, but Meet(%v, %v) = %v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestMeetIdempotent(t *testing.T) {
	values := []dataflow.Value{dataflow.Undef(), dataflow.NAC(), dataflow.Constant(5)}
	for _, v := range values {
		if got := dataflow.Meet(v, v); !got.Equal(v) {
			t.Errorf("Meet(%v, %v) = %v, want %v", v, v, got, v)
		}
	}
}

func TestAsConstantPanicsOnNonConstant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("AsConstant on NAC did not panic")
		}
	}()
	dataflow.NAC().AsConstant()
}

package dataflow_test

import (
	"testing"

	"github.com/xinchen-jzx/tai-e-go/dataflow"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

func bind(t *testing.T, vals map[*ir.Var]dataflow.Value) *dataflow.CPFact {
	t.Helper()
	f := dataflow.NewCPFact()
	for v, val := range vals {
		f.Update(v, val)
	}
	return f
}

func TestEvaluateVarAndLiteral(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{x: dataflow.Constant(42)})

	if got := dataflow.Evaluate(x, f); got.AsConstant() != 42 {
		t.Errorf("Evaluate(x) = %v, want Const(42)", got)
	}
	lit := &ir.IntLiteral{Value: -1}
	if got := dataflow.Evaluate(lit, f); got.AsConstant() != -1 {
		t.Errorf("Evaluate(IntLiteral{-1}) = %v, want Const(-1)", got)
	}
}

func TestEvaluateDivRemByZeroPrecedesNAC(t *testing.T) {
	a, b := ir.NewVar("a", ir.Int), ir.NewVar("b", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{a: dataflow.NAC(), b: dataflow.Constant(0)})

	div := &ir.ArithmeticExp{Op: ir.Div, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(div, f); !got.IsUndef() {
		t.Errorf("Evaluate(NAC / Const(0)) = %v, want Undef (zero divisor beats NAC propagation)", got)
	}

	rem := &ir.ArithmeticExp{Op: ir.Rem, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(rem, f); !got.IsUndef() {
		t.Errorf("Evaluate(NAC %% Const(0)) = %v, want Undef", got)
	}
}

func TestEvaluateNACPropagation(t *testing.T) {
	a, b := ir.NewVar("a", ir.Int), ir.NewVar("b", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{a: dataflow.NAC(), b: dataflow.Constant(3)})

	add := &ir.ArithmeticExp{Op: ir.Add, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(add, f); !got.IsNAC() {
		t.Errorf("Evaluate(NAC + Const(3)) = %v, want NAC", got)
	}
}

func TestEvaluateUndefPropagation(t *testing.T) {
	a, b := ir.NewVar("a", ir.Int), ir.NewVar("b", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{b: dataflow.Constant(3)}) // a is unbound: Undef

	add := &ir.ArithmeticExp{Op: ir.Add, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(add, f); !got.IsUndef() {
		t.Errorf("Evaluate(Undef + Const(3)) = %v, want Undef", got)
	}
}

func TestEvaluateArithmeticFolding(t *testing.T) {
	a, b := ir.NewVar("a", ir.Int), ir.NewVar("b", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{a: dataflow.Constant(7), b: dataflow.Constant(2)})

	cases := []struct {
		op   ir.ArithmeticOp
		want int32
	}{
		{ir.Add, 9},
		{ir.Sub, 5},
		{ir.Mul, 14},
		{ir.Div, 3},
		{ir.Rem, 1},
	}
	for _, c := range cases {
		exp := &ir.ArithmeticExp{Op: c.op, Operand1: a, Operand2: b}
		got := dataflow.Evaluate(exp, f)
		if !got.IsConstant() || got.AsConstant() != c.want {
			t.Errorf("Evaluate(7 %s 2) = %v, want Const(%d)", c.op, got, c.want)
		}
	}
}

func TestEvaluateConditionFolding(t *testing.T) {
	a, b := ir.NewVar("a", ir.Int), ir.NewVar("b", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{a: dataflow.Constant(2), b: dataflow.Constant(2)})

	eq := &ir.ConditionExp{Op: ir.Eq, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(eq, f); got.AsConstant() != 1 {
		t.Errorf("Evaluate(2 == 2) = %v, want Const(1)", got)
	}
	lt := &ir.ConditionExp{Op: ir.Lt, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(lt, f); got.AsConstant() != 0 {
		t.Errorf("Evaluate(2 < 2) = %v, want Const(0)", got)
	}
}

func TestEvaluateShiftMasksAmount(t *testing.T) {
	a, b := ir.NewVar("a", ir.Int), ir.NewVar("b", ir.Int)
	f := bind(t, map[*ir.Var]dataflow.Value{a: dataflow.Constant(1), b: dataflow.Constant(33)}) // 33 & 0x1f == 1

	shl := &ir.ShiftExp{Op: ir.Shl, Operand1: a, Operand2: b}
	if got := dataflow.Evaluate(shl, f); got.AsConstant() != 2 {
		t.Errorf("Evaluate(1 << 33) = %v, want Const(2) (shift amount masked to low 5 bits)", got)
	}
}

func TestEvaluateUnsupportedShapeIsNAC(t *testing.T) {
	f := dataflow.NewCPFact()
	newExp := &ir.NewExp{ClassName: "Widget"}
	if got := dataflow.Evaluate(newExp, f); !got.IsNAC() {
		t.Errorf("Evaluate(NewExp) = %v, want NAC", got)
	}
	call := &ir.CallExp{MethodName: "f"}
	if got := dataflow.Evaluate(call, f); !got.IsNAC() {
		t.Errorf("Evaluate(CallExp) = %v, want NAC", got)
	}
}

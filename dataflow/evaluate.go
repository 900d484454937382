package dataflow

import "github.com/xinchen-jzx/tai-e-go/ir"

// Evaluate abstractly interprets exp over the bindings in in, following
// Variables and literals evaluate directly; binary expressions check
// div/rem-by-zero before NAC-propagation (a zero divisor forces Undef even
// when the dividend is NAC); every other expression shape — the
// side-effectful ones, which have no constant-folding rule — evaluates to
// NAC.
func Evaluate(exp ir.Expr, in *CPFact) Value {
	switch e := exp.(type) {
	case *ir.Var:
		return in.Get(e)
	case *ir.IntLiteral:
		return Constant(e.Value)
	case *ir.ArithmeticExp:
		return evalArithmetic(e, in)
	case *ir.ConditionExp:
		return evalCondition(e, in)
	case *ir.ShiftExp:
		return evalShift(e, in)
	case *ir.BitwiseExp:
		return evalBitwise(e, in)
	default:
		return NAC()
	}
}

func evalArithmetic(e *ir.ArithmeticExp, in *CPFact) Value {
	v1, v2 := in.Get(e.Operand1), in.Get(e.Operand2)
	if e.Op == ir.Div || e.Op == ir.Rem {
		if v2.IsConstant() && v2.AsConstant() == 0 {
			return Undef()
		}
	}
	if v1.IsNAC() || v2.IsNAC() {
		return NAC()
	}
	if v1.IsUndef() || v2.IsUndef() {
		return Undef()
	}
	a, b := v1.AsConstant(), v2.AsConstant()
	switch e.Op {
	case ir.Add:
		return Constant(a + b)
	case ir.Sub:
		return Constant(a - b)
	case ir.Mul:
		return Constant(a * b)
	case ir.Div:
		return Constant(a / b)
	case ir.Rem:
		return Constant(a % b)
	default:
		panic("dataflow: unknown ArithmeticOp")
	}
}

func evalCondition(e *ir.ConditionExp, in *CPFact) Value {
	v1, v2 := in.Get(e.Operand1), in.Get(e.Operand2)
	if v1.IsNAC() || v2.IsNAC() {
		return NAC()
	}
	if v1.IsUndef() || v2.IsUndef() {
		return Undef()
	}
	a, b := v1.AsConstant(), v2.AsConstant()
	var result bool
	switch e.Op {
	case ir.Eq:
		result = a == b
	case ir.Ne:
		result = a != b
	case ir.Lt:
		result = a < b
	case ir.Gt:
		result = a > b
	case ir.Le:
		result = a <= b
	case ir.Ge:
		result = a >= b
	default:
		panic("dataflow: unknown ConditionOp")
	}
	if result {
		return Constant(1)
	}
	return Constant(0)
}

func evalShift(e *ir.ShiftExp, in *CPFact) Value {
	v1, v2 := in.Get(e.Operand1), in.Get(e.Operand2)
	if v1.IsNAC() || v2.IsNAC() {
		return NAC()
	}
	if v1.IsUndef() || v2.IsUndef() {
		return Undef()
	}
	a, b := v1.AsConstant(), uint32(v2.AsConstant())&0x1f
	switch e.Op {
	case ir.Shl:
		return Constant(a << b)
	case ir.Shr:
		return Constant(a >> b)
	case ir.Ushr:
		return Constant(int32(uint32(a) >> b))
	default:
		panic("dataflow: unknown ShiftOp")
	}
}

func evalBitwise(e *ir.BitwiseExp, in *CPFact) Value {
	v1, v2 := in.Get(e.Operand1), in.Get(e.Operand2)
	if v1.IsNAC() || v2.IsNAC() {
		return NAC()
	}
	if v1.IsUndef() || v2.IsUndef() {
		return Undef()
	}
	a, b := v1.AsConstant(), v2.AsConstant()
	switch e.Op {
	case ir.Or:
		return Constant(a | b)
	case ir.And:
		return Constant(a & b)
	case ir.Xor:
		return Constant(a ^ b)
	default:
		panic("dataflow: unknown BitwiseOp")
	}
}

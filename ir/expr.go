package ir

// Expr is the closed family of pure and side-effectful IR expressions:
// Var, IntLiteral, the four binary expression kinds, and the side-effectful
// NewExp/CastExp/FieldAccess/ArrayAccess/CallExp. New cases must add an
// unexported isExpr method here and are otherwise only ever matched with a
// type switch, never an open hierarchy.
type Expr interface {
	isExpr()
}

// LValue is the closed family of assignable locations. Only Var is tracked
// by constant propagation; the others exist so AssignStmt/InvokeStmt can
// model stores into fields, arrays, or other structures without being
// tracked (they behave as the identity transfer).
type LValue interface {
	isLValue()
}

// IntLiteral is a literal 32-bit integer constant.
type IntLiteral struct {
	Value int32
}

func (IntLiteral) isExpr() {}

// ArithmeticOp enumerates the arithmetic binary operators.
type ArithmeticOp int

const (
	Add ArithmeticOp = iota
	Sub
	Mul
	Div
	Rem
)

func (op ArithmeticOp) String() string {
	return [...]string{"+", "-", "*", "/", "%"}[op]
}

// ArithmeticExp is a binary arithmetic expression over two variables.
type ArithmeticExp struct {
	Op             ArithmeticOp
	Operand1, Operand2 *Var
}

func (*ArithmeticExp) isExpr() {}

// ConditionOp enumerates the relational operators.
type ConditionOp int

const (
	Eq ConditionOp = iota
	Ne
	Lt
	Gt
	Le
	Ge
)

func (op ConditionOp) String() string {
	return [...]string{"==", "!=", "<", ">", "<=", ">="}[op]
}

// ConditionExp is a binary relational expression, evaluating to 1 (true) or
// 0 (false) when both operands are known constants.
type ConditionExp struct {
	Op                 ConditionOp
	Operand1, Operand2 *Var
}

func (*ConditionExp) isExpr() {}

// ShiftOp enumerates the shift operators.
type ShiftOp int

const (
	Shl ShiftOp = iota
	Shr
	Ushr
)

func (op ShiftOp) String() string {
	return [...]string{"<<", ">>", ">>>"}[op]
}

// ShiftExp is a binary shift expression; the shift amount is masked to its
// low 5 bits before use, matching the source language's int shift semantics.
type ShiftExp struct {
	Op                 ShiftOp
	Operand1, Operand2 *Var
}

func (*ShiftExp) isExpr() {}

// BitwiseOp enumerates the bitwise operators.
type BitwiseOp int

const (
	Or BitwiseOp = iota
	And
	Xor
)

func (op BitwiseOp) String() string {
	return [...]string{"|", "&", "^"}[op]
}

// BitwiseExp is a binary bitwise expression.
type BitwiseExp struct {
	Op                 BitwiseOp
	Operand1, Operand2 *Var
}

func (*BitwiseExp) isExpr() {}

// NewExp allocates an object of the given class name. It has a side effect
// (heap mutation) and is never evaluated to anything but NAC.
type NewExp struct {
	ClassName string
}

func (*NewExp) isExpr() {}
func (*NewExp) isLValue() {} // the allocated value can itself be stored through

// CastExp casts a variable to another type. It may trigger a runtime cast
// failure, so it is conservatively side-effectful.
type CastExp struct {
	Operand *Var
	Target  Type
}

func (*CastExp) isExpr() {}

// FieldAccess reads (or, as an LValue, writes) an instance or static field.
// It may trigger class initialization or a null dereference.
type FieldAccess struct {
	Base      *Var // nil for a static field access
	FieldName string
}

func (*FieldAccess) isExpr()   {}
func (*FieldAccess) isLValue() {}

// ArrayAccess reads (or, as an LValue, writes) an array element. It may
// trigger a null dereference or an out-of-bounds access.
type ArrayAccess struct {
	Base  *Var
	Index *Var
}

func (*ArrayAccess) isExpr()   {}
func (*ArrayAccess) isLValue() {}

// CallExp is an opaque call to a method; the core never looks inside it
// (that is interprocedural reasoning, out of scope here), so it always
// evaluates to NAC. Dead-code detection's side-effect classification does
// not list it; the InvokeStmt that carries it is never subject to the
// dead-store rule, which applies only to AssignStmt.
type CallExp struct {
	MethodName string
	Args       []*Var
}

func (*CallExp) isExpr() {}

package ir

import "github.com/xinchen-jzx/tai-e-go/internal/funcutil"

// Stmt is the closed family of IR statements. Every statement has a stable,
// monotonically increasing Index used for deterministic ordering of
// dataflow facts and dead-code results.
type Stmt interface {
	// Index returns this statement's position in its IR, assigned once at
	// construction time and never reused.
	Index() int
	isStmt()
}

// DefinitionStmt is implemented by every Stmt that may define an lvalue:
// AssignStmt and InvokeStmt. Definitions of non-Var lvalues, or of Vars
// that cannot hold an integer, are still DefinitionStmts but are given the
// identity transfer by constant propagation.
type DefinitionStmt interface {
	Stmt
	// Def returns the defined lvalue, or None if this definition statement
	// has no result (e.g. a call made only for its side effect).
	Def() funcutil.Optional[LValue]
	// RValue returns the expression assigned to Def(), when Def() is Some.
	RValue() Expr
}

// AssignStmt assigns the value of RValue to LValue, e.g. `a = b + 2`.
type AssignStmt struct {
	idx    int
	LValue LValue
	RHS    Expr
}

// NewAssignStmt creates an assignment statement with the given index.
func NewAssignStmt(idx int, lvalue LValue, rvalue Expr) *AssignStmt {
	return &AssignStmt{idx: idx, LValue: lvalue, RHS: rvalue}
}

func (s *AssignStmt) Index() int { return s.idx }
func (*AssignStmt) isStmt()      {}

func (s *AssignStmt) Def() funcutil.Optional[LValue] {
	return funcutil.Some[LValue](s.LValue)
}

func (s *AssignStmt) RValue() Expr { return s.RHS }

// InvokeStmt is the other kind of DefinitionStmt: a call made for its
// return value, its side effect, or both. Result is nil when the call's
// return value is discarded.
type InvokeStmt struct {
	idx    int
	Result *Var
	Call   *CallExp
}

// NewInvokeStmt creates an invoke statement. Result may be nil.
func NewInvokeStmt(idx int, result *Var, call *CallExp) *InvokeStmt {
	return &InvokeStmt{idx: idx, Result: result, Call: call}
}

func (s *InvokeStmt) Index() int { return s.idx }
func (*InvokeStmt) isStmt()      {}

func (s *InvokeStmt) Def() funcutil.Optional[LValue] {
	if s.Result == nil {
		return funcutil.None[LValue]()
	}
	return funcutil.Some[LValue](s.Result)
}

func (s *InvokeStmt) RValue() Expr { return s.Call }

// IfStmt is a conditional branch; the CFG attaches the IfTrue/IfFalse
// out-edges. Target is the index of the statement taken when Cond is
// true; the false branch falls through to idx+1.
type IfStmt struct {
	idx    int
	Cond   Expr
	Target int
}

// NewIfStmt creates a branch statement testing Cond, jumping to the
// statement at index target when Cond is true.
func NewIfStmt(idx int, cond Expr, target int) *IfStmt {
	return &IfStmt{idx: idx, Cond: cond, Target: target}
}

func (s *IfStmt) Index() int { return s.idx }
func (*IfStmt) isStmt()      {}

// SwitchStmt is a multi-way branch on the value of Var. The CFG attaches
// one SwitchCase(k) out-edge per entry in Cases (to the parallel entry in
// Targets) and one SwitchDefault out-edge to DefaultTarget.
type SwitchStmt struct {
	idx           int
	Var           *Var
	Cases         []int32
	Targets       []int
	DefaultTarget int
}

// NewSwitchStmt creates a switch statement over Var with the given case
// values and their jump targets. Case values are assumed unique; Cases
// and Targets must be the same length.
func NewSwitchStmt(idx int, v *Var, cases []int32, targets []int, defaultTarget int) *SwitchStmt {
	return &SwitchStmt{idx: idx, Var: v, Cases: cases, Targets: targets, DefaultTarget: defaultTarget}
}

func (s *SwitchStmt) Index() int { return s.idx }
func (*SwitchStmt) isStmt()      {}

// ReturnStmt is an unclassified statement: it defines nothing and does not
// branch; the CFG gives it a single edge to the exit (or FallThrough, if
// the builder models returns as ordinary fall-through nodes).
type ReturnStmt struct {
	idx   int
	Value Expr // nil for a void return
}

// NewReturnStmt creates a return statement, optionally returning Value.
func NewReturnStmt(idx int, value Expr) *ReturnStmt {
	return &ReturnStmt{idx: idx, Value: value}
}

func (s *ReturnStmt) Index() int { return s.idx }
func (*ReturnStmt) isStmt()      {}

// NopStmt is an unclassified statement with no effect, used for
// placeholders (e.g. loop back-edges materialized as a label target).
type NopStmt struct {
	idx int
}

// NewNopStmt creates a no-op statement.
func NewNopStmt(idx int) *NopStmt {
	return &NopStmt{idx: idx}
}

func (s *NopStmt) Index() int { return s.idx }
func (*NopStmt) isStmt()      {}

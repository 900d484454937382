package dataflow

import "fmt"

// valueKind tags the three cases of Value.
type valueKind int

const (
	kindUndef valueKind = iota
	kindConst
	kindNAC
)

// Value is the abstract integer domain constant propagation computes over:
// Undef (bottom, "not yet known"), Const(c) (exactly the int32 c), and NAC
// ("not a constant", top). The domain has height 3 on any single variable,
// which guarantees the solver terminates.
type Value struct {
	kind valueKind
	c    int32
}

// Undef returns the bottom value.
func Undef() Value { return Value{kind: kindUndef} }

// NAC returns the top value ("not a constant").
func NAC() Value { return Value{kind: kindNAC} }

// Constant returns the value representing exactly c.
func Constant(c int32) Value { return Value{kind: kindConst, c: c} }

// IsUndef reports whether v is the bottom value.
func (v Value) IsUndef() bool { return v.kind == kindUndef }

// IsNAC reports whether v is the top value.
func (v Value) IsNAC() bool { return v.kind == kindNAC }

// IsConstant reports whether v holds a known constant.
func (v Value) IsConstant() bool { return v.kind == kindConst }

// AsConstant returns the held constant. It panics if v is not Const; this
// is a programming-bug-class violation, never a recoverable condition.
func (v Value) AsConstant() int32 {
	if v.kind != kindConst {
		panic("dataflow: AsConstant called on a non-constant Value")
	}
	return v.c
}

func (v Value) String() string {
	switch v.kind {
	case kindUndef:
		return "UNDEF"
	case kindNAC:
		return "NAC"
	default:
		return fmt.Sprintf("Const(%d)", v.c)
	}
}

// Equal reports structural equality between two Values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	return v.kind != kindConst || v.c == o.c
}

// Meet computes the lattice meet of a and b: either NAC yields NAC, either
// Undef yields the other operand, equal constants yield that constant, and
// unequal constants yield NAC. Meet is commutative, associative, and
// idempotent; Undef is its identity, NAC its absorbing element.
func Meet(a, b Value) Value {
	if a.IsNAC() || b.IsNAC() {
		return NAC()
	}
	if a.IsUndef() {
		return b
	}
	if b.IsUndef() {
		return a
	}
	if a.c == b.c {
		return a
	}
	return NAC()
}

package ir

// Type is the primitive type of a variable. Only the types that can hold an
// integer value matter to constant propagation; Ref stands in for every
// reference/object type, which constant propagation never tracks.
type Type int

const (
	// Int is a 32-bit signed integer.
	Int Type = iota
	// Byte, Short, Char and Boolean all widen to Int for the purposes of
	// this analysis, matching the source language's int-typed IR.
	Byte
	Short
	Char
	Boolean
	// Long is a 64-bit integer, out of scope for this core.
	Long
	// Ref is any reference/object type.
	Ref
)

// CanHoldInt reports whether a variable of this type can hold an integer
// value that constant propagation should track.
func (t Type) CanHoldInt() bool {
	switch t {
	case Int, Byte, Short, Char, Boolean:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Char:
		return "char"
	case Boolean:
		return "boolean"
	case Long:
		return "long"
	case Ref:
		return "ref"
	default:
		return "unknown"
	}
}

// Var is a local variable or parameter. Two Vars are the same variable iff
// they are the same *Var pointer; construct each variable once (e.g. with
// NewVar) and share the pointer everywhere it is referenced.
type Var struct {
	Name string
	T    Type
}

// NewVar creates a new variable with the given name and type.
func NewVar(name string, t Type) *Var {
	return &Var{Name: name, T: t}
}

// CanHoldInt reports whether this variable can hold an integer value.
func (v *Var) CanHoldInt() bool {
	return v.T.CanHoldInt()
}

func (v *Var) String() string {
	return v.Name
}

// isExpr marks Var as a member of the Expr closed family.
func (v *Var) isExpr() {}

// isLValue marks Var as a member of the LValue closed family.
func (v *Var) isLValue() {}

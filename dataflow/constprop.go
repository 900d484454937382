package dataflow

import (
	"github.com/xinchen-jzx/tai-e-go/cfg"
	"github.com/xinchen-jzx/tai-e-go/internal/funcutil"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

// ID identifies constant propagation in an ir.IR's result store.
const ID = "constprop"

// ConstantPropagation is a forward DataflowAnalysis[*CPFact] tracking, per
// program point, the best-known Value of every variable.
type ConstantPropagation struct {
	params []*ir.Var
}

// NewConstantPropagation returns a ConstantPropagation analysis for a
// method with the given parameters; every integer-holding parameter is
// bound to NAC at the boundary.
func NewConstantPropagation(params []*ir.Var) *ConstantPropagation {
	return &ConstantPropagation{params: params}
}

// IsForward reports that constant propagation runs forward.
func (*ConstantPropagation) IsForward() bool { return true }

// NewBoundaryFact binds every integer-holding parameter to NAC: a
// method's callers are not modeled, so any parameter's value must be
// treated as unknown rather than Undef, which would wrongly suggest the
// analysis proved it unreachable.
func (cp *ConstantPropagation) NewBoundaryFact(*cfg.CFG) *CPFact {
	fact := NewCPFact()
	for _, p := range cp.params {
		if p.CanHoldInt() {
			fact.Update(p, NAC())
		}
	}
	return fact
}

// NewInitialFact returns the empty fact (every variable Undef).
func (*ConstantPropagation) NewInitialFact() *CPFact { return NewCPFact() }

// MeetInto folds src into dst by pointwise meet.
func (*ConstantPropagation) MeetInto(src, dst *CPFact) bool {
	return MeetInto(src, dst)
}

// TransferNode applies the identity transfer to every statement except a
// DefinitionStmt whose lvalue is an integer-holding ir.Var, which gets its
// evaluated rvalue. It reports change by content equality of out's
// previous contents against the freshly computed fact — never by
// reference identity, which the implementation this was distilled from
// historically got wrong by comparing two always-distinct fact objects
// (see DESIGN.md).
func (*ConstantPropagation) TransferNode(n *cfg.Node, in, out *CPFact) bool {
	newOut := in.Copy()
	if def, ok := n.Stmt().(ir.DefinitionStmt); ok {
		target := funcutil.BindOption(def.Def(), func(lv ir.LValue) funcutil.Optional[*ir.Var] {
			if v, ok := lv.(*ir.Var); ok && v.CanHoldInt() {
				return funcutil.Some(v)
			}
			return funcutil.None[*ir.Var]()
		})
		if target.IsSome() {
			newOut.Update(target.Value(), Evaluate(def.RValue(), in))
		}
	}
	changed := !newOut.Equal(out)
	*out = *newOut
	return changed
}

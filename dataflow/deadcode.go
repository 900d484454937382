package dataflow

import (
	"github.com/xinchen-jzx/tai-e-go/cfg"
	"github.com/xinchen-jzx/tai-e-go/internal/funcutil"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

// DeadCodeID identifies dead-code detection in an ir.IR's result store.
const DeadCodeID = "deadcode"

// DetectDeadCode walks c from its entry, using cp's facts to prune
// branches whose guard folds to a constant and live's facts to classify
// otherwise-reachable assignments as dead stores. The result is
// sorted by Index(); the CFG's synthetic entry/exit are never included.
func DetectDeadCode(c *cfg.CFG, cp *DataflowResult[*CPFact], live *DataflowResult[*SetFact[*ir.Var]]) []ir.Stmt {
	reachable := make(map[int64]bool)
	var visit func(n *cfg.Node)
	visit = func(n *cfg.Node) {
		if reachable[n.ID()] {
			return
		}
		reachable[n.ID()] = true
		if n.IsEntry() || n.IsExit() {
			for _, succ := range c.SuccsOf(n) {
				visit(succ)
			}
			return
		}

		for _, succ := range successorsOf(c, n, cp) {
			visit(succ)
		}
	}
	visit(c.Entry())

	byIndex := make(map[int]ir.Stmt)
	indices := make(map[int]bool)
	for _, n := range c.Nodes() {
		if n.IsEntry() || n.IsExit() {
			continue
		}
		stmt := n.Stmt()
		dead := !reachable[n.ID()] || isDeadStore(stmt, live.OutFact(stmt))
		if dead {
			byIndex[stmt.Index()] = stmt
			indices[stmt.Index()] = true
		}
	}

	ordered := funcutil.SetToOrderedSlice(indices)
	return funcutil.Map(ordered, func(i int) ir.Stmt { return byIndex[i] })
}

// successorsOf returns the successors of n that DetectDeadCode's
// reachability walk should follow: every successor, unless n's condition
// or selector folds to a known constant, in which case only the edges that
// constant statically selects — for a switch, every SwitchCase edge whose
// value matches, not just the first (case values are not assumed unique).
func successorsOf(c *cfg.CFG, n *cfg.Node, cp *DataflowResult[*CPFact]) []*cfg.Node {
	switch st := n.Stmt().(type) {
	case *ir.IfStmt:
		v := Evaluate(st.Cond, cp.InFact(st))
		if v.IsConstant() {
			want := cfg.IfFalse
			if v.AsConstant() != 0 {
				want = cfg.IfTrue
			}
			return nodesForKind(c, n, want, 0)
		}
	case *ir.SwitchStmt:
		v := cp.InFact(st).Get(st.Var)
		if v.IsConstant() {
			var targets []*cfg.Node
			for _, e := range c.OutEdgesOf(n) {
				if e.Kind == cfg.SwitchCase && e.CaseValue == v.AsConstant() {
					targets = append(targets, e.To)
				}
			}
			if len(targets) > 0 {
				return targets
			}
			return nodesForKind(c, n, cfg.SwitchDefault, 0)
		}
	}
	return c.SuccsOf(n)
}

func nodesForKind(c *cfg.CFG, n *cfg.Node, kind cfg.EdgeKind, caseValue int32) []*cfg.Node {
	var nodes []*cfg.Node
	for _, e := range c.OutEdgesOf(n) {
		if e.Kind == kind && (kind != cfg.SwitchCase || e.CaseValue == caseValue) {
			nodes = append(nodes, e.To)
		}
	}
	return nodes
}

// isDeadStore reports whether stmt is a dead assignment: its rvalue has
// no side effect, its lvalue is a local ir.Var, and that var is not in
// liveOut. A missing liveOut fact carries no information about v, so it
// cannot establish that v is dead; absent liveness is treated as live.
func isDeadStore(stmt ir.Stmt, liveOut *SetFact[*ir.Var]) bool {
	as, ok := stmt.(*ir.AssignStmt)
	if !ok {
		return false
	}
	v, ok := as.LValue.(*ir.Var)
	if !ok {
		return false
	}
	if hasSideEffect(as.RHS) {
		return false
	}
	return liveOut != nil && !liveOut.Contains(v)
}

// hasSideEffect classifies the expressions that must never be pruned even
// when their result is unused: object creation, casts (which may throw a
// class-cast exception), field/array access (which may throw a null
// pointer or bounds exception), and integer division/remainder (which may
// throw on a zero divisor). Every other expression shape, including
// CallExp, is side-effect-free by this classification; CallExp's own
// statement form (InvokeStmt) is never a candidate for the dead-store rule
// in the first place, since it is not an AssignStmt.
func hasSideEffect(e ir.Expr) bool {
	switch ex := e.(type) {
	case *ir.NewExp, *ir.CastExp, *ir.FieldAccess, *ir.ArrayAccess:
		return true
	case *ir.ArithmeticExp:
		return ex.Op == ir.Div || ex.Op == ir.Rem
	default:
		return false
	}
}

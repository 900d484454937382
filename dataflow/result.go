package dataflow

import "github.com/xinchen-jzx/tai-e-go/ir"

// DataflowResult holds the in/out fact of every statement in a CFG, keyed
// by ir.Stmt. Solve starts every statement's slots at NewInitialFact().
// The synthetic entry and exit carry no statement and have no slots here:
// the boundary fact (entry's OUT for a forward analysis, exit's IN for a
// backward one) comes from NewBoundaryFact() and is held by Solve itself.
// Solve mutates the result exclusively; once Solve returns it is read-only
// and safe to share.
type DataflowResult[Fact any] struct {
	in  map[ir.Stmt]Fact
	out map[ir.Stmt]Fact
}

func newDataflowResult[Fact any]() *DataflowResult[Fact] {
	return &DataflowResult[Fact]{
		in:  make(map[ir.Stmt]Fact),
		out: make(map[ir.Stmt]Fact),
	}
}

// NewDataflowResult returns an empty DataflowResult. Solve builds its own;
// this constructor exists for callers assembling a result Solve never
// produces — most notably the live-variable result DetectDeadCode
// consumes, since live-variable analysis is out of scope for this module
// and its result must come from somewhere outside the solver.
func NewDataflowResult[Fact any]() *DataflowResult[Fact] {
	return newDataflowResult[Fact]()
}

// InFact returns the IN fact of stmt.
func (r *DataflowResult[Fact]) InFact(stmt ir.Stmt) Fact { return r.in[stmt] }

// OutFact returns the OUT fact of stmt.
func (r *DataflowResult[Fact]) OutFact(stmt ir.Stmt) Fact { return r.out[stmt] }

// SetInFact overwrites the IN fact of stmt.
func (r *DataflowResult[Fact]) SetInFact(stmt ir.Stmt, f Fact) { r.in[stmt] = f }

// SetOutFact overwrites the OUT fact of stmt.
func (r *DataflowResult[Fact]) SetOutFact(stmt ir.Stmt, f Fact) { r.out[stmt] = f }

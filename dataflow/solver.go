package dataflow

import (
	"github.com/xinchen-jzx/tai-e-go/cfg"
	"github.com/xinchen-jzx/tai-e-go/internal/graphutil"
)

// DataflowAnalysis is the uniform contract the solver drives any forward
// or backward monotone analysis through.
type DataflowAnalysis[Fact any] interface {
	// IsForward reports the direction this analysis runs in.
	IsForward() bool

	// NewBoundaryFact returns the fact installed at the boundary node:
	// entry's OUT for a forward analysis, exit's IN for a backward one.
	NewBoundaryFact(c *cfg.CFG) Fact

	// NewInitialFact returns the fact every non-boundary slot starts at.
	NewInitialFact() Fact

	// MeetInto folds src into dst in place, reporting whether dst changed.
	MeetInto(src, dst Fact) bool

	// TransferNode applies this analysis's transfer function at n, given
	// its input fact, writing the result into the second fact in place.
	// A forward solve passes (IN, OUT); a backward solve passes (OUT, IN).
	// It reports whether the written fact changed, using content equality
	// — never reference identity.
	TransferNode(n *cfg.Node, in, out Fact) bool
}

// Solve runs analysis to a fixed point over c and returns the resulting
// in/out facts for every statement. The worklist is seeded in reverse
// postorder (forward) or its dual (backward), computed once via
// internal/graphutil, then driven until no node's fact changes; the final
// result does not depend on this order, only the number of re-examinations
// does.
func Solve[Fact any](c *cfg.CFG, analysis DataflowAnalysis[Fact]) *DataflowResult[Fact] {
	result := newDataflowResult[Fact]()
	for _, n := range c.Nodes() {
		if n.IsEntry() || n.IsExit() {
			continue
		}
		result.SetInFact(n.Stmt(), analysis.NewInitialFact())
		result.SetOutFact(n.Stmt(), analysis.NewInitialFact())
	}

	nodeByID := make(map[int64]*cfg.Node, len(c.Nodes()))
	for _, n := range c.Nodes() {
		nodeByID[n.ID()] = n
	}

	if analysis.IsForward() {
		solveForward(c, nodeByID, analysis, result)
	} else {
		solveBackward(c, nodeByID, analysis, result)
	}
	return result
}

// worklistOrder returns the seed order for the worklist: reverse
// postorder from the entry for a forward analysis, or the dual (postorder
// from the exit, i.e. the reverse of reverse-postorder-from-exit) for a
// backward one.
func worklistOrder(c *cfg.CFG, forward bool) []int64 {
	if forward {
		return graphutil.ReversePostorder(c.AdjGraph(), c.Entry().ID())
	}
	rpoFromExit := graphutil.ReversePostorder(c.ReverseAdjGraph(), c.Exit().ID())
	order := make([]int64, len(rpoFromExit))
	for i, id := range rpoFromExit {
		order[len(rpoFromExit)-1-i] = id
	}
	return order
}

func solveForward[Fact any](c *cfg.CFG, nodeByID map[int64]*cfg.Node, analysis DataflowAnalysis[Fact], result *DataflowResult[Fact]) {
	boundary := analysis.NewBoundaryFact(c)
	outOf := func(n *cfg.Node) Fact {
		if n.IsEntry() {
			return boundary
		}
		return result.OutFact(n.Stmt())
	}

	wl := newQueue(worklistOrder(c, true))
	for !wl.empty() {
		n := nodeByID[wl.pop()]
		if n.IsEntry() || n.IsExit() {
			continue
		}

		in := analysis.NewInitialFact()
		for _, pred := range c.PredsOf(n) {
			analysis.MeetInto(outOf(pred), in)
		}
		result.SetInFact(n.Stmt(), in)

		out := result.OutFact(n.Stmt())
		if analysis.TransferNode(n, in, out) {
			for _, succ := range c.SuccsOf(n) {
				if !succ.IsExit() {
					wl.push(succ.ID())
				}
			}
		}
	}
}

func solveBackward[Fact any](c *cfg.CFG, nodeByID map[int64]*cfg.Node, analysis DataflowAnalysis[Fact], result *DataflowResult[Fact]) {
	boundary := analysis.NewBoundaryFact(c)
	inOf := func(n *cfg.Node) Fact {
		if n.IsExit() {
			return boundary
		}
		return result.InFact(n.Stmt())
	}

	wl := newQueue(worklistOrder(c, false))
	for !wl.empty() {
		n := nodeByID[wl.pop()]
		if n.IsEntry() || n.IsExit() {
			continue
		}

		out := analysis.NewInitialFact()
		for _, succ := range c.SuccsOf(n) {
			analysis.MeetInto(inOf(succ), out)
		}
		result.SetOutFact(n.Stmt(), out)

		in := result.InFact(n.Stmt())
		if analysis.TransferNode(n, out, in) {
			for _, pred := range c.PredsOf(n) {
				if !pred.IsEntry() {
					wl.push(pred.ID())
				}
			}
		}
	}
}

// queue is a FIFO worklist that silently drops a push for an id already
// waiting to be popped, since re-enqueuing an already-queued node cannot
// change the eventual fixed point, only waste a pop.
type queue struct {
	items   []int64
	pending map[int64]bool
}

func newQueue(seed []int64) *queue {
	q := &queue{pending: make(map[int64]bool, len(seed))}
	for _, id := range seed {
		q.push(id)
	}
	return q
}

func (q *queue) push(id int64) {
	if q.pending[id] {
		return
	}
	q.pending[id] = true
	q.items = append(q.items, id)
}

func (q *queue) pop() int64 {
	id := q.items[0]
	q.items = q.items[1:]
	delete(q.pending, id)
	return id
}

func (q *queue) empty() bool { return len(q.items) == 0 }

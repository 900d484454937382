package cfg

import (
	"fmt"

	"github.com/xinchen-jzx/tai-e-go/internal/funcutil"
	"github.com/xinchen-jzx/tai-e-go/internal/graphutil"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

// CFG is the control-flow graph of a single method body. It has exactly one
// Entry and one Exit node. Ordinary nodes are connected by the
// textual-successor/branch-target edges built from the method's statements;
// a node need not be reachable from Entry (for example, a statement that
// follows a return and is not the target of any branch).
type CFG struct {
	nodes []*Node
	entry *Node
	exit  *Node

	byStmtIndex map[int]*Node
	out         map[int64][]*Edge
	in          map[int64][]*Edge
}

// New builds the CFG for a method body of stmts, wiring
// FallThrough/IfTrue/IfFalse/SwitchCase/SwitchDefault edges from each
// statement's control structure. It validates eagerly: every IfStmt and
// SwitchStmt target must name a statement index that exists, or New returns
// an error rather than building a graph with dangling edges.
func New(stmts []ir.Stmt) (*CFG, error) {
	c := &CFG{
		byStmtIndex: make(map[int]*Node, len(stmts)),
		out:         make(map[int64][]*Edge),
		in:          make(map[int64][]*Edge),
	}

	c.entry = &Node{id: 0, kind: EntryNode}
	c.exit = &Node{id: int64(len(stmts) + 1), kind: ExitNode}
	c.nodes = append(c.nodes, c.entry)
	for i, s := range stmts {
		if s.Index() != i {
			return nil, fmt.Errorf("cfg: statement at position %d has Index() == %d", i, s.Index())
		}
		n := &Node{id: int64(i + 1), kind: StmtNode, stmt: s}
		c.nodes = append(c.nodes, n)
		c.byStmtIndex[i] = n
	}
	c.nodes = append(c.nodes, c.exit)

	lookup := func(idx int) (*Node, error) {
		n, ok := c.byStmtIndex[idx]
		if !ok {
			return nil, fmt.Errorf("cfg: branch target %d does not name a statement in this method", idx)
		}
		return n, nil
	}

	nodeAfter := func(i int) *Node {
		if i+1 < len(stmts) {
			return c.byStmtIndex[i+1]
		}
		return c.exit
	}

	if len(stmts) == 0 {
		c.addEdge(&Edge{Kind: FallThrough, From: c.entry, To: c.exit})
	} else {
		c.addEdge(&Edge{Kind: FallThrough, From: c.entry, To: c.byStmtIndex[0]})
	}

	for i, s := range stmts {
		n := c.byStmtIndex[i]
		switch st := s.(type) {
		case *ir.IfStmt:
			target, err := lookup(st.Target)
			if err != nil {
				return nil, err
			}
			c.addEdge(&Edge{Kind: IfTrue, From: n, To: target})
			c.addEdge(&Edge{Kind: IfFalse, From: n, To: nodeAfter(i)})
		case *ir.SwitchStmt:
			if len(st.Cases) != len(st.Targets) {
				return nil, fmt.Errorf("cfg: switch statement %d has %d cases but %d targets", i, len(st.Cases), len(st.Targets))
			}
			for k, caseVal := range st.Cases {
				target, err := lookup(st.Targets[k])
				if err != nil {
					return nil, err
				}
				c.addEdge(&Edge{Kind: SwitchCase, CaseValue: caseVal, From: n, To: target})
			}
			defTarget, err := lookup(st.DefaultTarget)
			if err != nil {
				return nil, err
			}
			c.addEdge(&Edge{Kind: SwitchDefault, From: n, To: defTarget})
		case *ir.ReturnStmt:
			c.addEdge(&Edge{Kind: FallThrough, From: n, To: c.exit})
		default:
			c.addEdge(&Edge{Kind: FallThrough, From: n, To: nodeAfter(i)})
		}
	}

	return c, nil
}

func (c *CFG) addEdge(e *Edge) {
	c.out[e.From.ID()] = append(c.out[e.From.ID()], e)
	c.in[e.To.ID()] = append(c.in[e.To.ID()], e)
}

// Entry is the CFG's unique entry node. It carries no statement.
func (c *CFG) Entry() *Node { return c.entry }

// Exit is the CFG's unique exit node. It carries no statement.
func (c *CFG) Exit() *Node { return c.exit }

// Nodes returns every node in the CFG, including Entry and Exit, in
// ascending id order (Entry first, Exit last).
func (c *CFG) Nodes() []*Node { return c.nodes }

// NodeFor returns the CFG node wrapping the statement at the given index.
func (c *CFG) NodeFor(stmtIndex int) *Node { return c.byStmtIndex[stmtIndex] }

// OutEdges returns n's out-edges in the order they were added.
func (c *CFG) OutEdges(n *Node) []*Edge { return c.out[n.ID()] }

// InEdges returns n's in-edges in the order they were added.
func (c *CFG) InEdges(n *Node) []*Edge { return c.in[n.ID()] }

// Succs returns the distinct successor nodes of n.
func (c *CFG) Succs(n *Node) []*Node {
	edges := c.out[n.ID()]
	seen := make(map[int64]bool, len(edges))
	var succs []*Node
	for _, e := range edges {
		if !seen[e.To.ID()] {
			seen[e.To.ID()] = true
			succs = append(succs, e.To)
		}
	}
	return succs
}

// SuccsOf is an alias of Succs for callers outside this package.
func (c *CFG) SuccsOf(n *Node) []*Node { return c.Succs(n) }

// PredsOf is an alias of Preds for callers outside this package.
func (c *CFG) PredsOf(n *Node) []*Node { return c.Preds(n) }

// OutEdgesOf is an alias of OutEdges for callers outside this package.
func (c *CFG) OutEdgesOf(n *Node) []*Edge { return c.OutEdges(n) }

// Preds returns the distinct predecessor nodes of n.
func (c *CFG) Preds(n *Node) []*Node {
	edges := c.in[n.ID()]
	seen := make(map[int64]bool, len(edges))
	var preds []*Node
	for _, e := range edges {
		if !seen[e.From.ID()] {
			seen[e.From.ID()] = true
			preds = append(preds, e.From)
		}
	}
	return preds
}

// AdjGraph returns a gonum-compatible view of this CFG, over which the
// solver computes its reverse-postorder worklist seed via internal/graphutil.
func (c *CFG) AdjGraph() *graphutil.AdjGraph {
	return graphutil.NewAdjGraph(c.nodeIDs(), func(id int64) []int64 {
		return distinctIDs(c.out[id], func(e *Edge) int64 { return e.To.ID() })
	})
}

// ReverseAdjGraph is AdjGraph with every edge reversed, for backward
// analyses that need to walk the CFG from the exit against the direction
// of control flow.
func (c *CFG) ReverseAdjGraph() *graphutil.AdjGraph {
	return graphutil.NewAdjGraph(c.nodeIDs(), func(id int64) []int64 {
		return distinctIDs(c.in[id], func(e *Edge) int64 { return e.From.ID() })
	})
}

func (c *CFG) nodeIDs() []int64 {
	return funcutil.Map(c.nodes, func(n *Node) int64 { return n.ID() })
}

// distinctIDs applies get to every edge and returns the distinct results,
// preserving first-seen order.
func distinctIDs(edges []*Edge, get func(*Edge) int64) []int64 {
	seen := make(map[int64]bool, len(edges))
	var ids []int64
	for _, e := range edges {
		id := get(e)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

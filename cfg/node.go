package cfg

import (
	"fmt"

	"github.com/xinchen-jzx/tai-e-go/ir"
)

// NodeKind distinguishes the two synthetic nodes every CFG has (Entry,
// Exit) from ordinary statement nodes.
type NodeKind int

const (
	StmtNode NodeKind = iota
	EntryNode
	ExitNode
)

// Node is one vertex of the control-flow graph. A Node of kind StmtNode
// wraps exactly one ir.Stmt; Entry and Exit carry no statement.
type Node struct {
	id   int64
	kind NodeKind
	stmt ir.Stmt
}

// ID is this node's identity within its CFG, stable for the CFG's lifetime.
func (n *Node) ID() int64 { return n.id }

// Kind reports whether this is the entry, the exit, or an ordinary node.
func (n *Node) Kind() NodeKind { return n.kind }

// Stmt returns the wrapped statement. It is nil for Entry and Exit.
func (n *Node) Stmt() ir.Stmt { return n.stmt }

// IsEntry reports whether n is its CFG's unique entry node.
func (n *Node) IsEntry() bool { return n.kind == EntryNode }

// IsExit reports whether n is its CFG's unique exit node.
func (n *Node) IsExit() bool { return n.kind == ExitNode }

func (n *Node) String() string {
	switch n.kind {
	case EntryNode:
		return "entry"
	case ExitNode:
		return "exit"
	default:
		return fmt.Sprintf("stmt[%d]", n.stmt.Index())
	}
}

package cfg_test

import (
	"testing"

	"github.com/xinchen-jzx/tai-e-go/cfg"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

func TestNewRejectsDanglingIfTarget(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	stmts := []ir.Stmt{
		ir.NewIfStmt(0, &ir.ConditionExp{Op: ir.Eq, Operand1: x, Operand2: x}, 7),
	}
	if _, err := cfg.New(stmts); err == nil {
		t.Errorf("cfg.New did not reject an out-of-range If target")
	}
}

func TestNewEmptyMethodConnectsEntryToExit(t *testing.T) {
	c, err := cfg.New(nil)
	if err != nil {
		t.Fatalf("cfg.New(nil): %v", err)
	}
	succs := c.SuccsOf(c.Entry())
	if len(succs) != 1 || succs[0] != c.Exit() {
		t.Errorf("entry of an empty method should connect directly to exit, got %v", succs)
	}
}

func TestFallThroughChain(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	stmts := []ir.Stmt{
		ir.NewAssignStmt(0, x, &ir.IntLiteral{Value: 1}),
		ir.NewReturnStmt(1, x),
	}
	c, err := cfg.New(stmts)
	if err != nil {
		t.Fatalf("cfg.New: %v", err)
	}

	n0, n1 := c.NodeFor(0), c.NodeFor(1)
	if got := c.SuccsOf(n0); len(got) != 1 || got[0] != n1 {
		t.Errorf("stmt 0's successor = %v, want [stmt 1]", got)
	}
	if got := c.SuccsOf(n1); len(got) != 1 || got[0] != c.Exit() {
		t.Errorf("return statement's successor = %v, want [exit]", got)
	}
	if got := c.PredsOf(n1); len(got) != 1 || got[0] != n0 {
		t.Errorf("stmt 1's predecessor = %v, want [stmt 0]", got)
	}
}

func TestIfStmtHasTrueAndFalseEdges(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	stmts := []ir.Stmt{
		ir.NewIfStmt(0, &ir.ConditionExp{Op: ir.Eq, Operand1: x, Operand2: x}, 2),
		ir.NewReturnStmt(1, x),
		ir.NewReturnStmt(2, x),
	}
	c, err := cfg.New(stmts)
	if err != nil {
		t.Fatalf("cfg.New: %v", err)
	}

	edges := c.OutEdgesOf(c.NodeFor(0))
	if len(edges) != 2 {
		t.Fatalf("IfStmt should have exactly 2 out-edges, got %d", len(edges))
	}
	var sawTrue, sawFalse bool
	for _, e := range edges {
		switch e.Kind {
		case cfg.IfTrue:
			sawTrue = e.To == c.NodeFor(2)
		case cfg.IfFalse:
			sawFalse = e.To == c.NodeFor(1)
		default:
			t.Errorf("unexpected edge kind %v on an IfStmt", e.Kind)
		}
	}
	if !sawTrue || !sawFalse {
		t.Errorf("IfStmt edges misrouted: true=%v false=%v", sawTrue, sawFalse)
	}
}

func TestSwitchStmtHasCaseAndDefaultEdges(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	stmts := []ir.Stmt{
		ir.NewSwitchStmt(0, x, []int32{1, 2}, []int{2, 3}, 4),
		ir.NewReturnStmt(1, x), // unreachable-by-construction fallthrough target, just a filler
		ir.NewReturnStmt(2, x),
		ir.NewReturnStmt(3, x),
		ir.NewReturnStmt(4, x),
	}
	c, err := cfg.New(stmts)
	if err != nil {
		t.Fatalf("cfg.New: %v", err)
	}

	edges := c.OutEdgesOf(c.NodeFor(0))
	if len(edges) != 3 {
		t.Fatalf("switch with 2 cases should have 3 out-edges (2 cases + default), got %d", len(edges))
	}
	foundDefault := false
	for _, e := range edges {
		if e.Kind == cfg.SwitchDefault {
			foundDefault = true
			if e.To != c.NodeFor(4) {
				t.Errorf("default edge goes to %v, want stmt 4", e.To)
			}
		}
	}
	if !foundDefault {
		t.Errorf("switch statement has no SwitchDefault edge")
	}
}

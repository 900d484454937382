// Package cfg builds and represents the control-flow graph over an ir.IR's
// statements: one node per statement plus a unique synthetic entry and exit,
// connected by edges labeled with the branch they represent. The dataflow
// package drives its solver over a *CFG; it never inspects ir.Stmt control
// structure (If/Switch targets) directly.
package cfg

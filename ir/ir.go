package ir

import "sync"

// IR is a single method body: its statements in index order, its formal
// parameters, and a keyed store of results published by whichever analyses
// have already run on it (e.g. "constprop", "deadcode", or a caller's own
// live-variable analysis ID). Building an IR from source, and scheduling
// which analyses run in which order, both happen above this package.
type IR struct {
	stmts  []Stmt
	params []*Var

	mu      sync.RWMutex
	results map[string]any
}

// New creates an IR for a method with the given statements (in index order)
// and formal parameters.
func New(stmts []Stmt, params []*Var) *IR {
	return &IR{
		stmts:   stmts,
		params:  params,
		results: make(map[string]any),
	}
}

// Stmts returns the statements of this method, ordered by index.
func (ir *IR) Stmts() []Stmt {
	return ir.stmts
}

// Params returns the formal parameters of this method.
func (ir *IR) Params() []*Var {
	return ir.params
}

// SetResult publishes the result of the analysis identified by id. It is
// safe to call concurrently with GetResult and with SetResult for other
// IDs, matching a concurrency model where analyses of different methods
// run fully independently, but within one method's IR, different analyses
// may publish their results from different goroutines.
func (ir *IR) SetResult(id string, result any) {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	ir.results[id] = result
}

// GetResult retrieves a previously published analysis result by its ID. The
// second return value is false if no analysis has published that ID yet.
func (ir *IR) GetResult(id string) (any, bool) {
	ir.mu.RLock()
	defer ir.mu.RUnlock()
	v, ok := ir.results[id]
	return v, ok
}

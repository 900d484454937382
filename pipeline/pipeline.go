package pipeline

import (
	"fmt"

	"github.com/xinchen-jzx/tai-e-go/cfg"
	"github.com/xinchen-jzx/tai-e-go/config"
	"github.com/xinchen-jzx/tai-e-go/dataflow"
	"github.com/xinchen-jzx/tai-e-go/internal/funcutil"
	"github.com/xinchen-jzx/tai-e-go/ir"
)

// Result is the output of analyzing one method: its CFG, its constant
// propagation result, and the statements classified as dead.
type Result struct {
	CFG          *cfg.CFG
	ConstantProp *dataflow.DataflowResult[*dataflow.CPFact]
	DeadCode     []ir.Stmt
}

// Analyze builds method's CFG, runs constant propagation to a fixed
// point, and runs dead-code detection against live (the method's
// caller-supplied live-variable result — live-variable analysis itself is
// out of scope for this module). Both results are published to
// method's own result store under dataflow.ID and dataflow.DeadCodeID.
// log, if non-nil, reports progress.
func Analyze(method *ir.IR, live *dataflow.DataflowResult[*dataflow.SetFact[*ir.Var]], log *config.LogGroup) (*Result, error) {
	c, err := cfg.New(method.Stmts())
	if err != nil {
		return nil, fmt.Errorf("pipeline: building cfg: %w", err)
	}
	if log != nil {
		log.Debugf("built cfg with %d statement(s)", len(method.Stmts()))
	}

	cp := dataflow.NewConstantPropagation(method.Params())
	cpResult := dataflow.Solve[*dataflow.CPFact](c, cp)
	method.SetResult(dataflow.ID, cpResult)
	if log != nil {
		log.Debugf("constant propagation reached a fixed point")
	}

	dead := dataflow.DetectDeadCode(c, cpResult, live)
	method.SetResult(dataflow.DeadCodeID, dead)
	if log != nil {
		log.Infof("found %d dead statement(s)", len(dead))
	}

	return &Result{CFG: c, ConstantProp: cpResult, DeadCode: dead}, nil
}

// job pairs a method with its caller-supplied live-variable result, so
// AnalyzeFunctionsParallel can hand a single slice element to each
// goroutine in funcutil.MapParallel.
type job struct {
	method *ir.IR
	live   *dataflow.DataflowResult[*dataflow.SetFact[*ir.Var]]
}

// AnalyzeFunctionsParallel runs Analyze across methods concurrently,
// since each method's analysis state shares no mutable memory with any
// other's — the one caller-level parallelism this repository ships.
// lives supplies each method's live-variable result, indexed the same way
// as methods. settings.NumRoutines controls how many goroutines
// funcutil.MapParallel uses; zero or negative runs everything on a single
// goroutine.
func AnalyzeFunctionsParallel(methods []*ir.IR, lives []*dataflow.DataflowResult[*dataflow.SetFact[*ir.Var]], settings *config.AnalysisConfig, log *config.LogGroup) []*Result {
	jobs := make([]job, len(methods))
	for i, m := range methods {
		jobs[i] = job{method: m, live: lives[i]}
	}

	numRoutines := 0
	if settings != nil {
		numRoutines = settings.NumRoutines
	}

	return funcutil.MapParallel(jobs, func(j job) *Result {
		res, err := Analyze(j.method, j.live, log)
		if err != nil {
			if log != nil {
				log.Errorf("analyzing method: %v", err)
			}
			return nil
		}
		return res
	}, numRoutines)
}

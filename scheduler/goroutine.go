package scheduler

import (
	"github.com/0of/Promise2/metrics"
	"github.com/0of/Promise2/plog"
)

// Goroutine runs each submission on its own, freshly spawned goroutine.
// Grounded on ygrebnov-workers/workers.go's dispatch loop, which spawns
// `go w.dispatch(ctx, t)` per incoming task.
type Goroutine struct {
	ins instrumented
}

// NewGoroutine constructs a Goroutine scheduler. log and provider may be
// nil, in which case logging/metrics are no-ops.
func NewGoroutine(log *plog.Logger, provider metrics.Provider) *Goroutine {
	return &Goroutine{ins: newInstrumented("goroutine", log, provider)}
}

func (s *Goroutine) Submit(work func()) {
	go s.ins.run(plog.CategoryDispatch, work)
}

// Package scheduler provides the out-of-core Scheduler adapters named by
// SPEC_FULL.md §6.1: Inline, Goroutine, Pool, and LoopScheduler. Every
// adapter satisfies promise2.Scheduler's single-method shape structurally
// (Submit(func())) without importing promise2, keeping the dependency
// direction the same as the teacher's own scheduler-agnostic design.
package scheduler

import (
	"time"

	"github.com/0of/Promise2/metrics"
	"github.com/0of/Promise2/plog"
)

// Scheduler mirrors promise2.Scheduler: accepts a unit of work and
// guarantees to invoke it exactly once, eventually.
type Scheduler interface {
	Submit(work func())
}

// instrumented wraps a dispatch with optional logging/metrics, common to
// every adapter in this package.
type instrumented struct {
	log     *plog.Logger
	metrics *metrics.SchedulerMetrics
}

func newInstrumented(kind string, log *plog.Logger, provider metrics.Provider) instrumented {
	if log == nil {
		log = plog.Default()
	}
	return instrumented{log: log, metrics: metrics.NewSchedulerMetrics(provider, kind)}
}

// run executes work, recording it as submitted when run is entered and as
// completed, with the time elapsed since entry, when work returns; time a
// submission spends waiting before run is entered is not measured. run
// does not recover panics: the deferred completion bookkeeping still runs
// and the panic propagates, and no adapter in this package swallows it.
func (ins instrumented) run(category string, work func()) {
	start := time.Now()
	ins.metrics.Submitted()
	defer ins.metrics.Completed(start)
	plog.Stage(ins.log, category, "stage dispatched", nil)
	work()
}

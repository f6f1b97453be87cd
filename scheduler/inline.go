package scheduler

import (
	"github.com/0of/Promise2/metrics"
	"github.com/0of/Promise2/plog"
)

// Inline runs work synchronously on the submitting goroutine. Grounded on
// the teacher's promise.go executeHandler fallback path, taken whenever no
// loop is attached (p.js == nil): the handler just runs inline.
type Inline struct {
	ins instrumented
}

// NewInline constructs an Inline scheduler. log and provider may be nil,
// in which case logging/metrics are no-ops.
func NewInline(log *plog.Logger, provider metrics.Provider) *Inline {
	return &Inline{ins: newInstrumented("inline", log, provider)}
}

func (s *Inline) Submit(work func()) {
	s.ins.run(plog.CategoryDispatch, work)
}

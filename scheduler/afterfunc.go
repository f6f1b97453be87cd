package scheduler

import "time"

// AfterFunc is the supplemental timer-backed convenience recovered from
// original_source/ (SPEC_FULL.md §8, item 2): it submits fn to sched after
// d elapses, via time.AfterFunc, rather than exposing a core Delay stage
// kind — timers are an external collaborator, out of scope for the core
// library (spec.md §1's "no I/O primitives"). Returns the underlying
// *time.Timer so the caller may Stop it to cancel.
func AfterFunc(d time.Duration, sched Scheduler, fn func()) *time.Timer {
	return time.AfterFunc(d, func() {
		sched.Submit(fn)
	})
}

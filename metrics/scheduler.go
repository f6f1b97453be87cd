package metrics

import "time"

// SchedulerMetrics is the set of instruments a scheduler adapter records
// against: submitted/completed counts, in-flight gauge, and a dispatch
// latency histogram fed by Completed (spec SPEC_FULL.md §6.4). The adapters
// in promise2/scheduler record from the moment a dispatch starts running
// until its work returns; queueing time before that is not included.
type SchedulerMetrics struct {
	submitted Counter
	completed Counter
	inFlight  UpDownCounter
	latency   Histogram
}

// NewSchedulerMetrics builds a SchedulerMetrics against provider, scoping
// instrument names under name (typically the scheduler adapter's kind,
// e.g. "pool" or "loop").
func NewSchedulerMetrics(provider Provider, name string) *SchedulerMetrics {
	if provider == nil {
		provider = NoopProvider{}
	}
	return &SchedulerMetrics{
		submitted: provider.Counter(name + ".submitted"),
		completed: provider.Counter(name + ".completed"),
		inFlight:  provider.UpDownCounter(name+".in_flight", WithUnit("1")),
		latency:   provider.Histogram(name+".dispatch_latency", WithUnit("seconds")),
	}
}

// Submitted records one unit of work entering the scheduler.
func (m *SchedulerMetrics) Submitted() {
	m.submitted.Add(1)
	m.inFlight.Add(1)
}

// Completed records one unit of work finishing, submittedAt seconds after
// Submitted was recorded for it.
func (m *SchedulerMetrics) Completed(submittedAt time.Time) {
	m.completed.Add(1)
	m.inFlight.Add(-1)
	m.latency.Record(time.Since(submittedAt).Seconds())
}

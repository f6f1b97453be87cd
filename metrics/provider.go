// Package metrics is the domain-stack metrics surface for promise2
// (SPEC_FULL.md §6.4): a minimal Provider abstraction grounded on
// github.com/ygrebnov/workers/metrics, paired with a P-Square streaming
// percentile estimator ported from the teacher's psquare.go, used by
// scheduler adapters to track how long each dispatched unit of work runs,
// without requiring any metrics backend when unused.
package metrics

// Provider constructs instruments used to record metrics. Implementations
// must be safe for concurrent use.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move up or down (e.g. in-flight count).
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional, advisory instrument metadata.
type InstrumentConfig struct {
	Description string
	Unit        string
	Attributes  map[string]string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g. "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

package scheduler

import (
	"github.com/0of/Promise2/metrics"
	"github.com/0of/Promise2/plog"
	"github.com/0of/Promise2/scheduler/pool"
)

// slotToken is the value pool.Pool recycles: a bounded number of these
// gate how many Submit'd work items run concurrently.
type slotToken struct{}

// Pool is a bounded or dynamic worker pool (SPEC_FULL.md §6.1), grounded
// on ygrebnov-workers/pool and the dispatch shape of ygrebnov-workers's
// `go w.dispatch(ctx, t)`: every Submit spawns a goroutine that blocks on
// acquiring a slot, runs the work, then releases the slot.
type Pool struct {
	slots pool.Pool
	ins   instrumented
}

// PoolOption configures a Pool at construction.
type PoolOption func(*poolConfig)

type poolConfig struct {
	log      *plog.Logger
	provider metrics.Provider
}

// WithLogger attaches a logger to the pool.
func WithLogger(log *plog.Logger) PoolOption {
	return func(c *poolConfig) { c.log = log }
}

// WithMetrics attaches a metrics provider to the pool.
func WithMetrics(provider metrics.Provider) PoolOption {
	return func(c *poolConfig) { c.provider = provider }
}

// NewFixedPool returns a Pool bounding concurrency to capacity concurrent
// work items; additional submissions block until a slot frees up.
func NewFixedPool(capacity uint, opts ...PoolOption) *Pool {
	cfg := applyPoolOptions(opts)
	return &Pool{
		slots: pool.NewFixed(capacity, func() interface{} { return slotToken{} }),
		ins:   newInstrumented("pool", cfg.log, cfg.provider),
	}
}

// NewDynamicPool returns a Pool with no fixed concurrency bound: slots are
// created on demand and recycled opportunistically via sync.Pool.
func NewDynamicPool(opts ...PoolOption) *Pool {
	cfg := applyPoolOptions(opts)
	return &Pool{
		slots: pool.NewDynamic(func() interface{} { return slotToken{} }),
		ins:   newInstrumented("pool", cfg.log, cfg.provider),
	}
}

func applyPoolOptions(opts []PoolOption) poolConfig {
	var cfg poolConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func (s *Pool) Submit(work func()) {
	go func() {
		slot := s.slots.Get()
		defer s.slots.Put(slot)
		s.ins.run(plog.CategoryPool, work)
	}()
}

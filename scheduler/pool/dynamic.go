package pool

import "sync"

// NewDynamic returns an unbounded pool of slots backed by sync.Pool,
// growing and shrinking with demand. Ported from ygrebnov-workers/pool.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}

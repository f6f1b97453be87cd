// Package pool is a slot-token pool bounding in-flight work, adapted from
// github.com/ygrebnov/workers/pool's Get/Put object-pool shape (originally
// pooling *worker[R] task-execution objects) to pooling anonymous slot
// tokens that gate concurrency rather than reusing heavyweight state.
package pool

// Pool hands out and reclaims slot tokens.
type Pool interface {
	// Get returns a slot, blocking (for a Fixed pool at capacity) until one
	// is available.
	Get() interface{}

	// Put returns a slot to the pool.
	Put(interface{})
}

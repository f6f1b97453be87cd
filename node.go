package promise2

import "sync"

// Scheduler is the one external collaborator this library depends on
// (spec §6): it accepts a unit-of-work closure and guarantees to invoke it
// exactly once, eventually, on some thread of its choosing. Concrete
// adapters live in promise2/scheduler.
type Scheduler interface {
	Submit(work func())
}

// nodeHandle is the "one trait" every stage kind implements (spec §9's
// "collapse into one trait/interface" redesign note), parameterized only
// by the stage's own result type — Forward hand-off and outcome
// observation never need to know a stage's argument type, only its
// result type, so Arg stays private to each concrete stage struct.
type nodeHandle[T any] interface {
	forward() *Forward[T]
	snapshot() *ValueCell[T]
}

// nodeCore is embedded by every concrete stage struct (PlainNode,
// DeferredNode, NestedNode, and terminalNode behind Resolved/Rejected);
// RecursionNode holds one as a field, backing its Final chain. It owns the
// stage's Forward, its
// optional error handler, its scheduler handle, and the one-shot latch
// gating entry into run/start (spec §4.3).
type nodeCore[Ret any] struct {
	fwd       *Forward[Ret]
	onError   func(error) *Promise[Ret]
	scheduler Scheduler

	runOnce sync.Once

	settled settledBox[Ret]
}

// settledBox holds the node's own observation snapshot: the cell it
// settled with, independent of whatever has (or hasn't) been chained onto
// its Forward. Promise.IsFulfilled/IsRejected read this directly rather
// than racing the Forward's drain-on-chain protocol.
type settledBox[T any] struct {
	mu   sync.Mutex
	cell *ValueCell[T]
}

func (b *settledBox[T]) store(cell *ValueCell[T]) {
	b.mu.Lock()
	if b.cell == nil {
		b.cell = cell
	}
	b.mu.Unlock()
}

func (b *settledBox[T]) load() *ValueCell[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cell
}

func newNodeCore[Ret any](scheduler Scheduler, onError func(error) *Promise[Ret]) *nodeCore[Ret] {
	return &nodeCore[Ret]{
		fwd:       NewForward[Ret](),
		onError:   onError,
		scheduler: scheduler,
	}
}

func (n *nodeCore[Ret]) forward() *Forward[Ret] { return n.fwd }

func (n *nodeCore[Ret]) snapshot() *ValueCell[Ret] { return n.settled.load() }

// settle publishes cell as this node's outcome: it is recorded for local
// observation and handed to the Forward for downstream delivery. Returns
// ErrDuplicateAssignment if the node already settled.
func (n *nodeCore[Ret]) settle(cell *ValueCell[Ret]) error {
	n.settled.store(cell)
	return n.fwd.resolveCell(cell)
}

func (n *nodeCore[Ret]) settleValue(v Ret) {
	cell := &ValueCell[Ret]{}
	_ = cell.setValue(v)
	_ = n.settle(cell)
}

func (n *nodeCore[Ret]) settleError(e error) {
	cell := &ValueCell[Ret]{}
	_ = cell.setError(e)
	_ = n.settle(cell)
}

// handleError implements the error-handler path from spec §4.8.
func (n *nodeCore[Ret]) handleError(err error) {
	if n.onError == nil {
		n.settleError(err)
		return
	}
	n.runErrorHandler(err)
}

func (n *nodeCore[Ret]) runErrorHandler(original error) {
	defer func() {
		if r := recover(); r != nil {
			// "if the invocation itself raises, forward.reject(currentError)":
			// currentError is the error produced by this panic, not the
			// original rejection it was trying to recover from.
			n.settleError(recoverUserError(r))
		}
	}()

	replacement := n.onError(original)
	if replacement == nil || !replacement.IsValid() {
		// "if it returns an invalid promise, forward.reject(originalError)"
		n.settleError(original)
		return
	}
	spliceInto(replacement, n)
}

// spliceInto routes inner's eventual outcome directly into target's
// Forward (spec §4.6's "Splicing"), reusing the inner node's own
// ValueCell rather than copying it.
func spliceInto[T any](inner *Promise[T], target *nodeCore[T]) {
	err := inner.node.forward().doChaining(func(cell *ValueCell[T]) {
		_ = target.settle(cell)
	})
	if err != nil {
		// inner was already chained elsewhere (programmer error on the
		// caller's part, e.g. reusing an onError-returned promise);
		// surface it as this node's own contract violation.
		panic(err)
	}
}

package promise2

// Defer is the handle surrendered to user code by a DeferredNode,
// allowing asynchronous resolution of that stage (spec §4.5). A Defer
// must have SetResult or SetError called on it exactly once, from any
// goroutine, at any later time; a second call surfaces as
// ErrDuplicateAssignment (panicking, per spec §7's contract-violation
// policy).
type Defer[Ret any] struct {
	node *nodeCore[Ret]
}

// SetResult fulfills the deferred stage with v.
func (d *Defer[Ret]) SetResult(v Ret) {
	cell := &ValueCell[Ret]{}
	_ = cell.setValue(v)
	if err := d.node.settle(cell); err != nil {
		panic(err)
	}
}

// SetError rejects the deferred stage with e.
func (d *Defer[Ret]) SetError(e error) {
	cell := &ValueCell[Ret]{}
	_ = cell.setError(e)
	if err := d.node.settle(cell); err != nil {
		panic(err)
	}
}

// DeferredNode hands a Defer handle to user code, which calls it
// asynchronously (spec §4.5). Arg is Unit for root (Spawn-created) tasks
// that have no upstream value.
type DeferredNode[Arg, Ret any] struct {
	*nodeCore[Ret]
	fn func(*Defer[Ret], Arg)
}

func newDeferredNode[Arg, Ret any](fn func(*Defer[Ret], Arg), scheduler Scheduler, onError func(error) *Promise[Ret]) *DeferredNode[Arg, Ret] {
	return &DeferredNode[Arg, Ret]{
		nodeCore: newNodeCore[Ret](scheduler, onError),
		fn:       fn,
	}
}

// start enters a root DeferredNode exactly once (no upstream value).
func (n *DeferredNode[Arg, Ret]) start() {
	n.runOnce.Do(func() {
		var zero Arg
		n.runBody(zero)
	})
}

func (n *DeferredNode[Arg, Ret]) runWith(cell *ValueCell[Arg]) {
	n.runOnce.Do(func() {
		if err := cell.accessGuard(); err != nil {
			n.handleError(err)
			return
		}
		v, _ := cell.getValue()
		n.runBody(v)
	})
}

func (n *DeferredNode[Arg, Ret]) runBody(v Arg) {
	defer func() {
		if r := recover(); r != nil {
			n.handleError(recoverUserError(r))
		}
	}()

	d := &Defer[Ret]{node: n.nodeCore}
	n.fn(d, v)
}

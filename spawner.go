package promise2

// This file is the Spawner/Thenable surface from spec §4.9/§6: the
// factory entry points that build root and downstream nodes, picking the
// stage kind implied by the supplied function's signature — the same
// technique the teacher's task-signature detection uses in
// ygrebnov-workers/task.go's newTask, switching over
// func(context.Context) (R, error) / func(context.Context) R /
// func(context.Context) error. Here the switch is over the shapes a root
// task or a Then handler may take.

// Spawn constructs a root node of the stage kind implied by task's
// signature and submits it to scheduler (spec §6). task must be one of:
//
//	func() T                          // plain
//	func() (T, error)                 // plain
//	func(*Defer[T])                   // deferred (requires EnableDeferredStages)
//	func() *Promise[T]                // nested (requires EnableNestedStages)
//	func() (*Promise[T], error)       // nested (requires EnableNestedStages)
//
// Any other shape panics with a UserError-kind *Error.
func Spawn[T any](task any, scheduler Scheduler) *Promise[T] {
	cfg := CurrentConfig()

	switch fn := task.(type) {
	case func() T:
		n := newPlainNode[Unit, T](func(Unit) (T, error) { return fn(), nil }, scheduler, nil)
		scheduler.Submit(n.start)
		return newPromise[T](n)

	case func() (T, error):
		n := newPlainNode[Unit, T](func(Unit) (T, error) { return fn() }, scheduler, nil)
		scheduler.Submit(n.start)
		return newPromise[T](n)

	case func(*Defer[T]):
		if !cfg.EnableDeferredStages {
			panic(ErrStageDisabled)
		}
		n := newDeferredNode[Unit, T](func(d *Defer[T], _ Unit) { fn(d) }, scheduler, nil)
		scheduler.Submit(n.start)
		return newPromise[T](n)

	case func() *Promise[T]:
		if !cfg.EnableNestedStages {
			panic(ErrStageDisabled)
		}
		n := newNestedNode[Unit, T](func(Unit) (*Promise[T], error) { return fn(), nil }, scheduler, nil)
		scheduler.Submit(n.start)
		return newPromise[T](n)

	case func() (*Promise[T], error):
		if !cfg.EnableNestedStages {
			panic(ErrStageDisabled)
		}
		n := newNestedNode[Unit, T](func(Unit) (*Promise[T], error) { return fn() }, scheduler, nil)
		scheduler.Submit(n.start)
		return newPromise[T](n)

	default:
		panic(newErr(UserError, "Spawn: unsupported task signature"))
	}
}

// adaptOnError normalizes the onError argument accepted by Then/Catch into
// a uniform func(error) *Promise[Ret], applying the void-rejection adapter
// (spec §4.8 last paragraph, gated by Config.AdaptVoidRejection) when the
// supplied handler has no return value.
func adaptOnError[Ret any](onError any, cfg Config) func(error) *Promise[Ret] {
	switch h := onError.(type) {
	case nil:
		return nil

	case func(error) *Promise[Ret]:
		return h

	case func(error) (*Promise[Ret], error):
		return func(e error) *Promise[Ret] {
			p, err := h(e)
			if err != nil {
				return Rejected[Ret](wrapErr(UserError, "error handler returned an error", err))
			}
			return p
		}

	case func(error):
		if !cfg.AdaptVoidRejection {
			panic(newErr(UserError, "Then/Catch: void-returning error handler requires Config.AdaptVoidRejection"))
		}
		return func(e error) *Promise[Ret] {
			h(e)
			var zero Ret
			return Resolved[Ret](zero)
		}

	default:
		panic(newErr(UserError, "Then/Catch: unsupported error handler signature"))
	}
}

// Then constructs a downstream node of the kind implied by onFulfill's
// signature, registers its receive callback on p's Forward, and returns a
// Promise to the new node (spec §4.9/§6). onFulfill must be one of:
//
//	func(Arg) Ret
//	func(Arg) (Ret, error)
//	func(*Defer[Ret], Arg)        // requires EnableDeferredStages
//	func(Arg) *Promise[Ret]       // requires EnableNestedStages
//	func(Arg) (*Promise[Ret], error) // requires EnableNestedStages
//
// onError may be nil (no error handler: a rejection forwards unchanged),
// or one of the shapes handled by adaptOnError.
func Then[Arg, Ret any](p *Promise[Arg], onFulfill any, onError any, scheduler Scheduler) *Promise[Ret] {
	if !p.IsValid() {
		panic(newErr(InvalidPromise, "Then called on an invalid Promise handle"))
	}
	cfg := CurrentConfig()
	errHandler := adaptOnError[Ret](onError, cfg)

	var downstream nodeHandle[Ret]

	switch fn := onFulfill.(type) {
	case func(Arg) Ret:
		n := newPlainNode[Arg, Ret](func(v Arg) (Ret, error) { return fn(v), nil }, scheduler, errHandler)
		downstream = n
		chainPlain(p, n, scheduler)

	case func(Arg) (Ret, error):
		n := newPlainNode[Arg, Ret](fn, scheduler, errHandler)
		downstream = n
		chainPlain(p, n, scheduler)

	case func(*Defer[Ret], Arg):
		if !cfg.EnableDeferredStages {
			panic(ErrStageDisabled)
		}
		n := newDeferredNode[Arg, Ret](fn, scheduler, errHandler)
		downstream = n
		chainDeferred(p, n, scheduler)

	case func(Arg) *Promise[Ret]:
		if !cfg.EnableNestedStages {
			panic(ErrStageDisabled)
		}
		n := newNestedNode[Arg, Ret](func(v Arg) (*Promise[Ret], error) { return fn(v), nil }, scheduler, errHandler)
		downstream = n
		chainNested(p, n, scheduler)

	case func(Arg) (*Promise[Ret], error):
		if !cfg.EnableNestedStages {
			panic(ErrStageDisabled)
		}
		n := newNestedNode[Arg, Ret](fn, scheduler, errHandler)
		downstream = n
		chainNested(p, n, scheduler)

	default:
		panic(newErr(UserError, "Then: unsupported onFulfill signature"))
	}

	return newPromise[Ret](downstream)
}

// chainPlain, chainDeferred, chainNested register the downstream node's
// receive callback on the upstream Forward (spec §4.9): the callback
// itself is a scheduler submission that invokes the downstream's runWith.

func chainPlain[Arg, Ret any](p *Promise[Arg], n *PlainNode[Arg, Ret], scheduler Scheduler) {
	err := p.node.forward().doChaining(func(cell *ValueCell[Arg]) {
		scheduler.Submit(func() { n.runWith(cell) })
	})
	if err != nil {
		panic(err)
	}
}

func chainDeferred[Arg, Ret any](p *Promise[Arg], n *DeferredNode[Arg, Ret], scheduler Scheduler) {
	err := p.node.forward().doChaining(func(cell *ValueCell[Arg]) {
		scheduler.Submit(func() { n.runWith(cell) })
	})
	if err != nil {
		panic(err)
	}
}

func chainNested[Arg, Ret any](p *Promise[Arg], n *NestedNode[Arg, Ret], scheduler Scheduler) {
	err := p.node.forward().doChaining(func(cell *ValueCell[Arg]) {
		scheduler.Submit(func() { n.runWith(cell) })
	})
	if err != nil {
		panic(err)
	}
}

// ThenOnly is Then without an error handler (spec §6's
// `then(onFulfill, scheduler)` overload): a rejection forwards unchanged.
func ThenOnly[Arg, Ret any](p *Promise[Arg], onFulfill any, scheduler Scheduler) *Promise[Ret] {
	return Then[Arg, Ret](p, onFulfill, nil, scheduler)
}

// Catch registers onError with no fulfill handler (spec §6's
// `catch(onError, scheduler) → Promise<unit>`): a successful upstream
// value is discarded (mapped to Unit) and passed through; a rejection is
// routed to onError exactly as Then's error-handler path does.
func Catch[Arg any](p *Promise[Arg], onError any, scheduler Scheduler) *Promise[Unit] {
	passthrough := func(Arg) (Unit, error) { return Done, nil }
	return Then[Arg, Unit](p, passthrough, onError, scheduler)
}

// Iterate constructs a RecursionNode walking it and submits it to
// scheduler, returning a RecursionPromise (spec §4.7/§6).
func Iterate[T any](it Iterator[T], scheduler Scheduler) *RecursionPromise[T] {
	n := newRecursionNode[T](it, scheduler)
	scheduler.Submit(n.start)
	return &RecursionPromise[T]{node: n}
}

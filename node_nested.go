package promise2

// NestedNode splices the outcome of a user-returned Promise into this
// stage's own Forward (spec §4.6).
type NestedNode[Arg, Ret any] struct {
	*nodeCore[Ret]
	fn func(Arg) (*Promise[Ret], error)
}

func newNestedNode[Arg, Ret any](fn func(Arg) (*Promise[Ret], error), scheduler Scheduler, onError func(error) *Promise[Ret]) *NestedNode[Arg, Ret] {
	return &NestedNode[Arg, Ret]{
		nodeCore: newNodeCore[Ret](scheduler, onError),
		fn:       fn,
	}
}

func (n *NestedNode[Arg, Ret]) start() {
	n.runOnce.Do(func() {
		var zero Arg
		n.runBody(zero)
	})
}

func (n *NestedNode[Arg, Ret]) runWith(cell *ValueCell[Arg]) {
	n.runOnce.Do(func() {
		if err := cell.accessGuard(); err != nil {
			n.handleError(err)
			return
		}
		v, _ := cell.getValue()
		n.runBody(v)
	})
}

func (n *NestedNode[Arg, Ret]) runBody(v Arg) {
	defer func() {
		if r := recover(); r != nil {
			n.handleError(recoverUserError(r))
		}
	}()

	inner, err := n.fn(v)
	if err != nil {
		n.handleError(wrapErr(UserError, "nested stage function returned an error", err))
		return
	}
	if inner == nil || !inner.IsValid() {
		n.handleError(newErr(UserError, "nested stage function returned an invalid promise"))
		return
	}
	spliceInto(inner, n.nodeCore)
}

package promise2

// PlainNode maps an upstream value through a pure function (spec §4.4).
type PlainNode[Arg, Ret any] struct {
	*nodeCore[Ret]
	fn func(Arg) (Ret, error)
}

func newPlainNode[Arg, Ret any](fn func(Arg) (Ret, error), scheduler Scheduler, onError func(error) *Promise[Ret]) *PlainNode[Arg, Ret] {
	return &PlainNode[Arg, Ret]{
		nodeCore: newNodeCore[Ret](scheduler, onError),
		fn:       fn,
	}
}

// start enters a root PlainNode exactly once (no upstream value).
func (n *PlainNode[Arg, Ret]) start() {
	n.runOnce.Do(func() {
		var zero Arg
		n.runBody(zero)
	})
}

func (n *PlainNode[Arg, Ret]) runWith(cell *ValueCell[Arg]) {
	n.runOnce.Do(func() { n.run(cell) })
}

func (n *PlainNode[Arg, Ret]) run(cell *ValueCell[Arg]) {
	if err := cell.accessGuard(); err != nil {
		n.handleError(err)
		return
	}
	v, _ := cell.getValue()
	n.runBody(v)
}

func (n *PlainNode[Arg, Ret]) runBody(v Arg) {
	defer func() {
		if r := recover(); r != nil {
			n.handleError(recoverUserError(r))
		}
	}()

	result, err := n.fn(v)
	if err != nil {
		n.handleError(wrapErr(UserError, "plain stage function returned an error", err))
		return
	}
	n.settleValue(result)
}

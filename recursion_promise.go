package promise2

// RecursionPromise is the public handle for an iteration pipeline (spec
// §4.7/§6): Then registers a per-value callback pair, while Final yields
// an ordinary Promise[Unit] for the terminal completion signal.
type RecursionPromise[T any] struct {
	node *RecursionNode[T]
}

// Then registers onValue against every value the sequence produces, each
// dispatched through scheduler (spec §4.7). The per-value stream carries
// only values: a failing step ends the stream and is reported through
// Final's rejection, not through onError, so onError is never called by
// a RecursionNode-backed stream. onError may be nil.
func (rp *RecursionPromise[T]) Then(onValue func(T), onError func(error), scheduler Scheduler) {
	err := rp.node.values.doChaining(func(cell *ValueCell[T]) {
		scheduler.Submit(func() {
			if cell.isErrorCase() {
				if onError != nil {
					_, cellErr := cell.getValue()
					onError(cellErr)
				}
				return
			}
			v, _ := cell.getValue()
			onValue(v)
		})
	})
	if err != nil {
		panic(err)
	}
}

// Final returns a Promise[Unit] that settles once the sequence is
// exhausted (fulfilled with Done) or a step fails (rejected with that
// step's error) — spec §4.7's terminal signal, exposed as an ordinary
// downstream stage so it composes with Then/Catch like any other Promise.
func (rp *RecursionPromise[T]) Final() *Promise[Unit] {
	return newPromise[Unit](rp.node.term)
}

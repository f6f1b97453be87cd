package promise2

// Promise is the public, typed handle wrapping a shared Node (spec §3): a
// read-only view onto a stage's eventual outcome. The zero value is an
// invalid handle (IsValid reports false); a valid Promise is obtained only
// from Spawn, Then, ThenOnly, Catch, Finally, Resolved, Rejected, or
// RecursionPromise.Final.
type Promise[T any] struct {
	node nodeHandle[T]
}

func newPromise[T any](n nodeHandle[T]) *Promise[T] {
	return &Promise[T]{node: n}
}

// IsValid reports whether this handle actually references a node.
func (p *Promise[T]) IsValid() bool {
	return p != nil && p.node != nil
}

// IsFulfilled reports whether the promise has settled successfully.
// Panics with an InvalidPromise-kind *Error if the handle is invalid.
func (p *Promise[T]) IsFulfilled() bool {
	p.mustBeValid()
	cell := p.node.snapshot()
	return cell != nil && !cell.isErrorCase()
}

// IsRejected reports whether the promise has settled with a failure.
// Panics with an InvalidPromise-kind *Error if the handle is invalid.
func (p *Promise[T]) IsRejected() bool {
	p.mustBeValid()
	cell := p.node.snapshot()
	return cell != nil && cell.isErrorCase()
}

func (p *Promise[T]) mustBeValid() {
	if !p.IsValid() {
		panic(newErr(InvalidPromise, "operation on an invalid Promise handle"))
	}
}

// terminalNode backs Resolved/Rejected: a Node whose Forward is pre-filled
// at construction, so chaining onto it is immediate (spec §4.9).
type terminalNode[T any] struct {
	*nodeCore[T]
}

func newResolvedNode[T any](v T) *terminalNode[T] {
	n := &terminalNode[T]{nodeCore: newNodeCore[T](nil, nil)}
	n.settleValue(v)
	return n
}

func newRejectedNode[T any](e error) *terminalNode[T] {
	n := &terminalNode[T]{nodeCore: newNodeCore[T](nil, nil)}
	n.settleError(e)
	return n
}

// Resolved returns an already-fulfilled Promise[T] holding v.
func Resolved[T any](v T) *Promise[T] {
	return newPromise[T](newResolvedNode[T](v))
}

// Rejected returns an already-rejected Promise[T] holding e.
func Rejected[T any](e error) *Promise[T] {
	return newPromise[T](newRejectedNode[T](e))
}

package promise2

// Finally is a thin combinator over Then/Catch (SPEC_FULL.md §8,
// recovered from the original's PromisePublicAPIsImpl.h): onFinally runs
// regardless of fulfillment or rejection and never alters the outcome it
// observes — a fulfilled p stays fulfilled with the same value, a
// rejected p stays rejected with the same error.
func Finally[T any](p *Promise[T], onFinally func(), scheduler Scheduler) *Promise[T] {
	passthrough := func(v T) (T, error) {
		onFinally()
		return v, nil
	}
	onError := func(e error) *Promise[T] {
		onFinally()
		return Rejected[T](e)
	}
	return Then[T, T](p, passthrough, onError, scheduler)
}

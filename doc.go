// Package promise2 provides a typed, chainable deferred-value (Promise[T])
// abstraction with pluggable scheduling.
//
// # Architecture
//
// Every stage (whatever function shape spawned it) is built from the same
// three layers: a [ValueCell] holding a single-assignment outcome, a
// [Forward] (one outcome) or [ForwardMany] (any number of values) relaying
// it to a single downstream receiver, and a nodeCore embedded by the concrete stage
// struct (PlainNode, DeferredNode, NestedNode) that owns the Forward and
// the optional error handler. [Promise] is the public, typed handle onto a
// node; [Spawn], [Then], [Catch], [Iterate] are the entry points that build
// nodes and wire them together.
//
// # Stage kinds
//
// A function's own signature selects its stage kind: a plain
// `func(Arg) Ret` (or with a trailing error) runs synchronously and
// settles from its return value; a `func(*Defer[Ret], Arg)` hands the
// caller a [Defer] to settle asynchronously from any goroutine; a
// `func(Arg) *Promise[Ret]` splices another promise's eventual outcome
// into this stage's own Forward. [RecursionPromise], built by [Iterate],
// is the one sequence-producing shape: a per-value stream plus a single
// terminal completion signal.
//
// # Scheduling
//
// [Scheduler] is the one external collaborator this library depends on: it
// accepts a unit-of-work closure and guarantees to invoke it exactly once,
// eventually, on some thread of its choosing. Concrete adapters — running
// inline, on a fresh goroutine, on a bounded pool, or on a single ordered
// loop — live in promise2/scheduler.
//
// # Error taxonomy
//
// Contract violations (an invalid handle, a duplicate chain, a duplicate
// assignment) panic at the offending call; only errors originating in user
// code — a returned error, or a recovered panic — ever ride a Forward as a
// rejection.
package promise2

package scheduler

import (
	"sync"

	"github.com/0of/Promise2/metrics"
	"github.com/0of/Promise2/plog"
)

// LoopScheduler is a single dedicated goroutine draining a FIFO work
// channel, giving strict in-order, single-threaded execution of every
// submitted stage (spec.md §5: "if the consumer requires strict ordering,
// it must use a single-threaded scheduler"). Grounded on the teacher's
// loop.go ingress-queue-plus-drain-loop shape, stripped of the timer
// heap, I/O poller, and FD/wakeup machinery that are out of scope here
// (spec.md §1: "no I/O primitives").
type LoopScheduler struct {
	queue chan func()
	done  chan struct{}
	start sync.Once
	stop  sync.Once
	ins   instrumented
}

// NewLoopScheduler constructs a LoopScheduler with the given queue buffer
// size (0 for unbuffered, i.e. a Submit blocks until the loop goroutine is
// ready to receive). log and provider may be nil.
func NewLoopScheduler(bufferSize int, log *plog.Logger, provider metrics.Provider) *LoopScheduler {
	l := &LoopScheduler{
		queue: make(chan func(), bufferSize),
		done:  make(chan struct{}),
		ins:   newInstrumented("loop", log, provider),
	}
	l.start.Do(func() { go l.run() })
	return l
}

func (l *LoopScheduler) run() {
	for {
		select {
		case work, ok := <-l.queue:
			if !ok {
				return
			}
			l.ins.run(plog.CategoryDispatch, work)
		case <-l.done:
			return
		}
	}
}

// Submit enqueues work for execution on the loop's single goroutine, in
// the order Submit is called.
func (l *LoopScheduler) Submit(work func()) {
	l.queue <- work
}

// Stop terminates the loop's goroutine. Already-queued work that has not
// yet been dispatched is abandoned. Safe to call more than once.
func (l *LoopScheduler) Stop() {
	l.stop.Do(func() { close(l.done) })
}

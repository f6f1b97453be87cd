// Package plog is the structured-logging surface for promise2 (SPEC_FULL.md
// §6.2): a thin wrapper over github.com/joeycumines/logiface, using
// github.com/joeycumines/stumpy as the default JSON event backend, replacing
// the teacher's hand-rolled package-level Logger/LogEntry/SetStructuredLogger
// machinery with the pack's own structured-logging library. Categories are
// narrowed from the teacher's ("timer", "promise", "microtask", "poll",
// "shutdown") to this library's own stage-lifecycle vocabulary.
package plog

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Categories used by scheduler adapters when logging stage dispatch.
const (
	CategoryDispatch = "dispatch"
	CategoryStage    = "stage"
	CategoryPanic    = "panic"
	CategoryPool     = "pool"
)

// Logger is the concrete logger type every scheduler adapter accepts.
type Logger = logiface.Logger[*stumpy.Event]

// discard is a zero-size io.Writer sink used by Default, avoiding an
// os.Stdout/os.Stderr dependency for callers who never configure logging.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Default returns a Logger that drops every event — the zero-cost
// no-logging default every scheduler adapter falls back to, mirroring the
// teacher's NewNoOpLogger default.
func Default() *Logger {
	return logiface.New[*stumpy.Event](
		stumpy.WithStumpy(stumpy.WithWriter(discard{})),
		logiface.WithLevel[*stumpy.Event](logiface.LevelDisabled),
	)
}

// New builds a Logger that writes newline-delimited JSON events to w, at
// logiface.LevelTrace and above (i.e. everything enabled).
func New(w io.Writer) *Logger {
	return logiface.New[*stumpy.Event](
		stumpy.WithStumpy(stumpy.WithWriter(w)),
		logiface.WithLevel[*stumpy.Event](logiface.LevelTrace),
	)
}

// Stage logs a single stage-lifecycle event at debug level, tagged with
// category and an optional error.
func Stage(l *Logger, category, message string, err error) {
	b := l.Debug().Str("category", category)
	if err != nil {
		b = b.Err(err)
	}
	b.Log(message)
}

// Panic logs a recovered panic at error level.
func Panic(l *Logger, category, message string, recovered error) {
	l.Err().Str("category", category).Err(recovered).Log(message)
}

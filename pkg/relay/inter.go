package relay

import "context"

// Source is a blocking, pull-style origin of elements. Next returns
// io.EOF once the source is exhausted; any other error is terminal.
// Close releases underlying resources and must be safe to call after
// Next returned an error.
type Source[T any] interface {
	// Next returns the next element in source order
	Next() (T, error)
	// Close releases the source's resources
	Close() error
}

// SourceFactory acquires a Source at the start of a run. It receives
// the run context so sources that honor cancellation can unblock
// themselves; the bridge itself never interrupts a pull.
type SourceFactory[T any] func(ctx context.Context) (Source[T], error)

// Scope wraps the whole transfer of one run, e.g. in a read-only
// transaction. It must tear the scope down on every exit path and
// return any error raised by the action after teardown.
type Scope interface {
	Run(action func() error) error
}

// ScopeFunc adapts a function to the Scope interface.
type ScopeFunc func(action func() error) error

func (f ScopeFunc) Run(action func() error) error {
	return f(action)
}

// PassThrough is the default scope: it calls the action unmodified.
func PassThrough() Scope {
	return ScopeFunc(func(action func() error) error {
		return action()
	})
}

// OnElement is invoked once per element on the worker, before the
// element is offered. Side effect only; it must not replace the
// element the consumer will see and must not block unbounded.
type OnElement[T any] func(v T)

// Executor supplies the execution context the worker runs on.
type Executor interface {
	Go(f func())
}

type goExecutor struct{}

func (goExecutor) Go(f func()) {
	go f()
}

// GoRoutines is the default Executor: one plain goroutine per run.
func GoRoutines() Executor {
	return goExecutor{}
}

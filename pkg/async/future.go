// Package async implements the settle-once Future cell and the cooperative
// Task adapter. There is no scheduler or event loop: Resolve and Reject run
// every queued continuation synchronously on the settler's call stack, so
// deep then-chains produce deep stacks and a continuation may itself settle
// further futures reentrantly. Continuations always run outside the cell's
// lock, which keeps reentrant settlement safe.
//
// Resolve/Reject are serialised by the cell's mutex (first caller wins), but
// the containers a Future typically carries are single-owner; sharing
// payloads across goroutines needs external synchronisation.
package async

import "sync"

// State is the lifecycle position of a Future.
type State int

const (
	Pending State = iota
	Fulfilled
	StateRejected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Future is a settle-once asynchronous result cell. The zero value is not
// usable; construct with NewFuture, Resolved or Rejected.
type Future[T any] struct {
	mu        sync.Mutex
	done      *sync.Cond
	state     State
	value     T
	err       error
	onFulfill []func(T)
	onReject  []func(error)
}

// NewFuture creates a pending future.
func NewFuture[T any]() *Future[T] {
	f := &Future[T]{}
	f.done = sync.NewCond(&f.mu)
	return f
}

// Resolved creates an already-fulfilled future.
func Resolved[T any](value T) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(value)
	return f
}

// Rejected creates an already-rejected future.
func Rejected[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Reject(err)
	return f
}

// State reports the current lifecycle position.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot returns the value, error and state in one consistent read.
func (f *Future[T]) Snapshot() (T, error, State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err, f.state
}

// Resolve fulfils the future. The first settlement wins; later calls to
// Resolve or Reject are no-ops. Queued fulfilment continuations run
// synchronously in registration order and both queues are cleared.
func (f *Future[T]) Resolve(value T) {
	f.mu.Lock()
	if f.state != Pending {
		f.mu.Unlock()
		return
	}
	f.state = Fulfilled
	f.value = value
	callbacks := f.onFulfill
	f.onFulfill = nil
	f.onReject = nil
	f.done.Broadcast()
	f.mu.Unlock()
	for _, cb := range callbacks {
		cb(value)
	}
}

// Reject settles the future with an error. The first settlement wins.
// Queued rejection continuations run synchronously in registration order
// and both queues are cleared.
func (f *Future[T]) Reject(err error) {
	f.mu.Lock()
	if f.state != Pending {
		f.mu.Unlock()
		return
	}
	f.state = StateRejected
	f.err = err
	callbacks := f.onReject
	f.onFulfill = nil
	f.onReject = nil
	f.done.Broadcast()
	f.mu.Unlock()
	for _, cb := range callbacks {
		cb(err)
	}
}

// OnFulfilled registers a fulfilment continuation. If the future is already
// fulfilled the continuation fires immediately on the caller's stack; if it
// is already rejected the continuation is discarded.
func (f *Future[T]) OnFulfilled(cb func(T)) {
	if cb == nil {
		return
	}
	f.mu.Lock()
	switch f.state {
	case Pending:
		f.onFulfill = append(f.onFulfill, cb)
		f.mu.Unlock()
	case Fulfilled:
		value := f.value
		f.mu.Unlock()
		cb(value)
	default:
		f.mu.Unlock()
	}
}

// OnRejected registers a rejection continuation, symmetric to OnFulfilled.
func (f *Future[T]) OnRejected(cb func(error)) {
	if cb == nil {
		return
	}
	f.mu.Lock()
	switch f.state {
	case Pending:
		f.onReject = append(f.onReject, cb)
		f.mu.Unlock()
	case StateRejected:
		err := f.err
		f.mu.Unlock()
		cb(err)
	default:
		f.mu.Unlock()
	}
}

// Await blocks the calling goroutine until the future settles, then
// returns its outcome. This is a host-side convenience; transpiled code
// uses the continuation surface instead.
func (f *Future[T]) Await() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.state == Pending {
		f.done.Wait()
	}
	return f.value, f.err
}

// Then derives a future from the fulfilment path. When the receiver
// fulfils, onFulfilled runs; its error (or panic) rejects the derived
// future, its value resolves it. Rejections bypass onFulfilled and
// propagate to the derived future unchanged — only Catch observes them.
func (f *Future[T]) Then(onFulfilled func(T) (T, error)) *Future[T] {
	derived := NewFuture[T]()
	f.OnFulfilled(func(value T) {
		settleFrom(derived, func() (T, error) { return onFulfilled(value) })
	})
	f.OnRejected(func(err error) {
		derived.Reject(err)
	})
	return derived
}

// Catch derives a future from the rejection path. Fulfilments pass through
// unchanged. When the receiver rejects, onRejected may recover by returning
// a value, or re-fail by returning (or panicking with) a new error.
func (f *Future[T]) Catch(onRejected func(error) (T, error)) *Future[T] {
	derived := NewFuture[T]()
	f.OnFulfilled(func(value T) {
		derived.Resolve(value)
	})
	f.OnRejected(func(err error) {
		settleFrom(derived, func() (T, error) { return onRejected(err) })
	})
	return derived
}

// ThenMap is Then with a result-type change, as a package function because
// methods cannot introduce type parameters.
func ThenMap[T, U any](f *Future[T], onFulfilled func(T) (U, error)) *Future[U] {
	derived := NewFuture[U]()
	f.OnFulfilled(func(value T) {
		settleFrom(derived, func() (U, error) { return onFulfilled(value) })
	})
	f.OnRejected(func(err error) {
		derived.Reject(err)
	})
	return derived
}

// settleFrom runs a handler and settles derived with its outcome,
// converting panics into rejections.
func settleFrom[T any](derived *Future[T], handler func() (T, error)) {
	value, err := runHandler(handler)
	if err != nil {
		derived.Reject(err)
		return
	}
	derived.Resolve(value)
}

func runHandler[T any](handler func() (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Recovered: r}
		}
	}()
	return handler()
}

package async

import "fmt"

// PanicError wraps a recovered panic from a task body, a resumption or a
// then/catch handler, so it can travel the rejection path like any other
// error.
type PanicError struct {
	Recovered any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Recovered)
}

// Task is a coroutine-style frame over a single owned future. The body runs
// synchronously on the creator's stack until it either completes, fails, or
// suspends by registering an Await. Resumption after an await is a direct
// synchronous call back into the frame, performed by whichever party
// settles the awaited future — there is no resumption queue.
type Task[T any] struct {
	fut *Future[T]
}

// NewTask creates the task's future and immediately runs body to its first
// suspension point. A panic escaping the body rejects the future.
func NewTask[T any](body func(*Task[T])) *Task[T] {
	t := &Task[T]{fut: NewFuture[T]()}
	if body != nil {
		t.step(func() { body(t) })
	}
	return t
}

// Future returns the task's result cell. It settles exactly once, when the
// task completes or fails.
func (t *Task[T]) Future() *Future[T] { return t.fut }

// Complete fulfils the task's future. Later calls are no-ops.
func (t *Task[T]) Complete(value T) { t.fut.Resolve(value) }

// Fail rejects the task's future. Later calls are no-ops.
func (t *Task[T]) Fail(err error) { t.fut.Reject(err) }

// step runs one synchronous segment of the frame, converting an escaping
// panic into task failure.
func (t *Task[T]) step(segment func()) {
	defer func() {
		if r := recover(); r != nil {
			t.Fail(&PanicError{Recovered: r})
		}
	}()
	segment()
}

// Await suspends t on dep. When dep fulfils, resume is invoked
// synchronously from inside the settling call, continuing the frame; when
// dep rejects, the task fails with dep's error and resume never runs. An
// already-settled dep resumes (or fails) immediately on the caller's
// stack. Await is a package function because methods cannot introduce the
// dependency's type parameter.
func Await[T, U any](t *Task[T], dep *Future[U], resume func(U)) {
	dep.OnFulfilled(func(value U) {
		t.step(func() { resume(value) })
	})
	dep.OnRejected(func(err error) {
		t.Fail(err)
	})
}

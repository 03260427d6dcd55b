package async

import "sync/atomic"

// All aggregates futures into one future of all results, ordered by input
// index. The index is captured at registration time, so the output order is
// independent of completion order. The first rejection settles the
// aggregate immediately; later outcomes from the other inputs are
// discarded. An empty input resolves at once with an empty slice.
func All[T any](futures []*Future[T]) *Future[[]T] {
	aggregate := NewFuture[[]T]()
	if len(futures) == 0 {
		aggregate.Resolve([]T{})
		return aggregate
	}
	results := make([]T, len(futures))
	var remaining atomic.Int64
	remaining.Store(int64(len(futures)))
	for i, f := range futures {
		i := i
		f.OnFulfilled(func(value T) {
			results[i] = value
			if remaining.Add(-1) == 0 {
				aggregate.Resolve(results)
			}
		})
		f.OnRejected(func(err error) {
			aggregate.Reject(err)
		})
	}
	return aggregate
}

// Race settles with the outcome of whichever input settles first. The
// atomic flag makes the winner selection exactly-once even when producers
// settle from different goroutines; a second winner arriving later is
// silently ignored.
func Race[T any](futures []*Future[T]) *Future[T] {
	winner := NewFuture[T]()
	var settled atomic.Bool
	for _, f := range futures {
		f.OnFulfilled(func(value T) {
			if settled.CompareAndSwap(false, true) {
				winner.Resolve(value)
			}
		})
		f.OnRejected(func(err error) {
			if settled.CompareAndSwap(false, true) {
				winner.Reject(err)
			}
		})
	}
	return winner
}

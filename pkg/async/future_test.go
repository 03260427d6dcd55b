package async

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestResolveSettlesOnce(t *testing.T) {
	f := NewFuture[int]()
	f.Resolve(1)
	f.Resolve(2)
	f.Reject(errors.New("late"))

	value, err, state := f.Snapshot()
	if state != Fulfilled {
		t.Fatalf("state = %s, want fulfilled", state)
	}
	if err != nil || value != 1 {
		t.Fatalf("snapshot = (%v, %v), want (1, nil)", value, err)
	}
}

func TestRejectSettlesOnce(t *testing.T) {
	boom := errors.New("boom")
	f := NewFuture[int]()
	f.Reject(boom)
	f.Resolve(9)

	value, err, state := f.Snapshot()
	if state != StateRejected {
		t.Fatalf("state = %s, want rejected", state)
	}
	if !errors.Is(err, boom) || value != 0 {
		t.Fatalf("snapshot = (%v, %v), want (0, boom)", value, err)
	}
}

func TestContinuationsRunInRegistrationOrder(t *testing.T) {
	f := NewFuture[int]()
	var order []int
	f.OnFulfilled(func(int) { order = append(order, 1) })
	f.OnFulfilled(func(int) { order = append(order, 2) })
	f.OnFulfilled(func(int) { order = append(order, 3) })
	f.Resolve(0)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
}

func TestLateRegistrationFiresImmediately(t *testing.T) {
	f := Resolved(42)
	fired := false
	f.OnFulfilled(func(value int) {
		if value != 42 {
			t.Fatalf("value = %d, want 42", value)
		}
		fired = true
	})
	if !fired {
		t.Fatal("continuation on a settled future must fire synchronously")
	}

	rejected := Rejected[int](errors.New("x"))
	discarded := false
	rejected.OnFulfilled(func(int) { discarded = true })
	if discarded {
		t.Fatal("fulfilment continuation must be discarded on a rejected future")
	}
	caught := false
	rejected.OnRejected(func(error) { caught = true })
	if !caught {
		t.Fatal("rejection continuation on a rejected future must fire synchronously")
	}
}

func TestReentrantSettlementFromContinuation(t *testing.T) {
	first := NewFuture[int]()
	second := NewFuture[int]()
	first.OnFulfilled(func(value int) {
		second.Resolve(value + 1)
	})
	var got int
	second.OnFulfilled(func(value int) { got = value })
	first.Resolve(1)
	if got != 2 {
		t.Fatalf("chained value = %d, want 2", got)
	}
}

func TestThenChain(t *testing.T) {
	f := NewFuture[int]()
	derived := f.Then(func(v int) (int, error) {
		return v * 2, nil
	}).Then(func(v int) (int, error) {
		return v + 1, nil
	})
	f.Resolve(10)
	value, err := derived.Await()
	if err != nil || value != 21 {
		t.Fatalf("chain = (%d, %v), want (21, nil)", value, err)
	}
}

func TestThenErrorRejectsDerived(t *testing.T) {
	boom := errors.New("boom")
	f := Resolved(1)
	derived := f.Then(func(int) (int, error) {
		return 0, boom
	})
	if _, err := derived.Await(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRejectionBypassesThen(t *testing.T) {
	boom := errors.New("boom")
	f := Rejected[int](boom)
	ran := false
	derived := f.Then(func(v int) (int, error) {
		ran = true
		return v, nil
	})
	if ran {
		t.Fatal("then handler must not run on rejection")
	}
	if _, err := derived.Await(); !errors.Is(err, boom) {
		t.Fatalf("rejection must propagate unchanged, got %v", err)
	}
}

func TestCatchRecovers(t *testing.T) {
	f := Rejected[int](errors.New("boom"))
	recovered := f.Catch(func(error) (int, error) {
		return 7, nil
	})
	value, err := recovered.Await()
	if err != nil || value != 7 {
		t.Fatalf("recovered = (%d, %v), want (7, nil)", value, err)
	}

	// Fulfilments pass through Catch untouched.
	passthrough := Resolved(3).Catch(func(error) (int, error) {
		t.Fatal("catch handler must not run on fulfilment")
		return 0, nil
	})
	if value, _ := passthrough.Await(); value != 3 {
		t.Fatalf("passthrough = %d, want 3", value)
	}
}

func TestHandlerPanicBecomesRejection(t *testing.T) {
	derived := Resolved(1).Then(func(int) (int, error) {
		panic("kaboom")
	})
	_, err := derived.Await()
	var panicked *PanicError
	if !errors.As(err, &panicked) {
		t.Fatalf("err = %v, want PanicError", err)
	}
	if panicked.Recovered != "kaboom" {
		t.Fatalf("recovered = %v, want kaboom", panicked.Recovered)
	}
}

func TestThenMapChangesType(t *testing.T) {
	derived := ThenMap(Resolved(5), func(v int) (string, error) {
		return strconv.Itoa(v), nil
	})
	value, err := derived.Await()
	if err != nil || value != "5" {
		t.Fatalf("ThenMap = (%q, %v)", value, err)
	}
}

func TestAwaitBlocksUntilSettled(t *testing.T) {
	f := NewFuture[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Resolve("done")
	}()
	value, err := f.Await()
	if err != nil || value != "done" {
		t.Fatalf("Await = (%q, %v), want (\"done\", nil)", value, err)
	}
}

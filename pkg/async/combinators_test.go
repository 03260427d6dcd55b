package async

import (
	"errors"
	"testing"
)

func TestAllOrdersByIndex(t *testing.T) {
	futures := []*Future[int]{NewFuture[int](), NewFuture[int](), NewFuture[int]()}
	aggregate := All(futures)

	// Settle out of order; results must still follow input order.
	futures[2].Resolve(30)
	futures[0].Resolve(10)
	if aggregate.State() != Pending {
		t.Fatal("aggregate must stay pending until every input settles")
	}
	futures[1].Resolve(20)

	values, err := aggregate.Await()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(values) != 3 || values[0] != 10 || values[1] != 20 || values[2] != 30 {
		t.Fatalf("values = %v, want [10 20 30]", values)
	}
}

func TestAllFirstRejectionWins(t *testing.T) {
	boom := errors.New("boom")
	futures := []*Future[int]{NewFuture[int](), NewFuture[int]()}
	aggregate := All(futures)

	futures[1].Reject(boom)
	if _, err := aggregate.Await(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	// A later fulfilment must not flip the settled aggregate.
	futures[0].Resolve(1)
	if _, err, state := aggregate.Snapshot(); state != StateRejected || !errors.Is(err, boom) {
		t.Fatalf("aggregate flipped: state %s, err %v", state, err)
	}
}

func TestAllEmptyResolvesImmediately(t *testing.T) {
	aggregate := All[int](nil)
	values, err := aggregate.Await()
	if err != nil || len(values) != 0 {
		t.Fatalf("All(nil) = (%v, %v), want empty slice", values, err)
	}
}

func TestRaceFirstSettlementWins(t *testing.T) {
	futures := []*Future[string]{NewFuture[string](), NewFuture[string]()}
	winner := Race(futures)

	futures[1].Resolve("second input, first to settle")
	futures[0].Resolve("too late")

	value, err := winner.Await()
	if err != nil || value != "second input, first to settle" {
		t.Fatalf("Race = (%q, %v)", value, err)
	}
}

func TestRaceRejectionCanWin(t *testing.T) {
	boom := errors.New("boom")
	futures := []*Future[int]{NewFuture[int](), NewFuture[int]()}
	winner := Race(futures)

	futures[0].Reject(boom)
	futures[1].Resolve(1)

	if _, err := winner.Await(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRaceWithSettledInput(t *testing.T) {
	futures := []*Future[int]{Resolved(5), NewFuture[int]()}
	winner := Race(futures)
	if value, err := winner.Await(); err != nil || value != 5 {
		t.Fatalf("Race = (%d, %v), want (5, nil)", value, err)
	}
}

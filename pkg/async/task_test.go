package async

import (
	"errors"
	"strconv"
	"testing"
)

func TestTaskCompletesSynchronously(t *testing.T) {
	task := NewTask(func(t *Task[int]) {
		t.Complete(42)
	})
	value, err, state := task.Future().Snapshot()
	if state != Fulfilled || err != nil || value != 42 {
		t.Fatalf("task = (%d, %v, %s), want (42, nil, fulfilled)", value, err, state)
	}
}

func TestTaskAwaitSuspendsAndResumes(t *testing.T) {
	dep := NewFuture[int]()
	task := NewTask(func(frame *Task[string]) {
		Await(frame, dep, func(value int) {
			frame.Complete("got " + strconv.Itoa(value))
		})
	})
	if task.Future().State() != Pending {
		t.Fatal("task must be suspended while the dependency is pending")
	}

	// Settling the dependency resumes the frame on this call stack.
	dep.Resolve(7)
	value, err := task.Future().Await()
	if err != nil || value != "got 7" {
		t.Fatalf("task = (%q, %v)", value, err)
	}
}

func TestTaskAwaitAlreadySettledResumesImmediately(t *testing.T) {
	task := NewTask(func(frame *Task[int]) {
		Await(frame, Resolved(3), func(value int) {
			frame.Complete(value * 2)
		})
	})
	// No pending state: the resumption ran inside NewTask.
	value, err, state := task.Future().Snapshot()
	if state != Fulfilled || err != nil || value != 6 {
		t.Fatalf("task = (%d, %v, %s), want (6, nil, fulfilled)", value, err, state)
	}
}

func TestTaskDependencyRejectionFailsTask(t *testing.T) {
	boom := errors.New("boom")
	dep := NewFuture[int]()
	resumed := false
	task := NewTask(func(frame *Task[int]) {
		Await(frame, dep, func(int) { resumed = true })
	})
	dep.Reject(boom)
	if resumed {
		t.Fatal("resume must not run when the dependency rejects")
	}
	if _, err := task.Future().Await(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestTaskBodyPanicRejects(t *testing.T) {
	task := NewTask(func(*Task[int]) {
		panic("body exploded")
	})
	_, err := task.Future().Await()
	var panicked *PanicError
	if !errors.As(err, &panicked) {
		t.Fatalf("err = %v, want PanicError", err)
	}
}

func TestTaskResumptionPanicRejects(t *testing.T) {
	dep := NewFuture[int]()
	task := NewTask(func(frame *Task[int]) {
		Await(frame, dep, func(int) {
			panic("resumption exploded")
		})
	})
	dep.Resolve(1)
	_, err := task.Future().Await()
	var panicked *PanicError
	if !errors.As(err, &panicked) {
		t.Fatalf("err = %v, want PanicError", err)
	}
}

func TestTaskChainedAwaits(t *testing.T) {
	first := NewFuture[int]()
	second := NewFuture[int]()
	task := NewTask(func(frame *Task[int]) {
		Await(frame, first, func(a int) {
			Await(frame, second, func(b int) {
				frame.Complete(a + b)
			})
		})
	})
	first.Resolve(1)
	if task.Future().State() != Pending {
		t.Fatal("task must re-suspend on the second await")
	}
	second.Resolve(2)
	value, err := task.Future().Await()
	if err != nil || value != 3 {
		t.Fatalf("task = (%d, %v), want (3, nil)", value, err)
	}
}

package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func makers() map[string]func() Queue[int] {
	return map[string]func() Queue[int]{
		"array0": func() Queue[int] { return MakeArrayQueue[int](0) },
		"array1": func() Queue[int] { return MakeArrayQueue[int](1) },
		"array8": func() Queue[int] { return MakeArrayQueue[int](8) },
		"linked": MakeLinkedQueue[int],
	}
}

func TestQueue_Empty(t *testing.T) {
	for name, mk := range makers() {
		t.Run(name, func(t *testing.T) {
			q := mk()
			if !q.Empty() || q.Size() != 0 {
				t.Errorf("new queue has size %d", q.Size())
			}
			if v := q.Peek(); v != 0 {
				t.Errorf("peek on empty queue gave %d, want 0", v)
			}
			_, err := q.Pop()
			var eqe *EmptyQueueError
			if !errors.As(err, &eqe) {
				t.Errorf("pop on empty queue gave error %v, want EmptyQueueError", err)
			}
		})
	}
}

func TestQueue_FIFO(t *testing.T) {
	const n = 1000
	for name, mk := range makers() {
		t.Run(name, func(t *testing.T) {
			q := mk()
			next, want := 0, 0
			// interleave pushes and pops so the array queue wraps around while growing.
			for want < n {
				if next < n && (q.Empty() || rg.Intn(3) > 0) {
					q.Push(next)
					next++
				} else {
					if p := q.Peek(); p != want {
						t.Fatalf("peek gave %d, want %d", p, want)
					}
					v, err := q.Pop()
					if err != nil {
						t.Fatalf("unexpected error %v", err)
					}
					if v != want {
						t.Fatalf("pop gave %d, want %d", v, want)
					}
					want++
				}
				if q.Size() != uint(next-want) {
					t.Fatalf("size is %d, want %d", q.Size(), next-want)
				}
			}
			if !q.Empty() {
				t.Errorf("queue not empty after popping everything")
			}
		})
	}
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := range 20 {
		q.Push(i)
	}
	for range 15 {
		q.Pop()
	}
	q.Shrink()
	for i := 15; i < 20; i++ {
		if v, _ := q.Pop(); v != i {
			t.Errorf("pop after shrink gave %d, want %d", v, i)
		}
	}
	for i := range 7 {
		q.Push(i)
	}
	q.Clear()
	if !q.Empty() {
		t.Errorf("queue has size %d after clear", q.Size())
	}
	q.Push(42)
	if v := q.Peek(); v != 42 {
		t.Errorf("peek after clear gave %d, want 42", v)
	}
}

package Queues

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// linkedQ adapts the singly linked list queue from gods to Queue[T]. Every
// element costs one list node, so it never has unused slack like circArrQ.
type linkedQ[T any] struct {
	q *linkedlistqueue.Queue
}

func MakeLinkedQueue[T any]() Queue[T] {
	return &linkedQ[T]{linkedlistqueue.New()}
}

func (u *linkedQ[T]) Push(item T) {
	u.q.Enqueue(item)
}

func (u *linkedQ[T]) Pop() (T, error) {
	if v, ok := u.q.Dequeue(); ok {
		t, _ := v.(T) // nil interface values come back as the zero T
		return t, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *linkedQ[T]) Peek() T {
	v, _ := u.q.Peek()
	t, _ := v.(T)
	return t
}

func (u *linkedQ[T]) Empty() bool {
	return u.q.Empty()
}

func (u *linkedQ[T]) Size() uint {
	return uint(u.q.Size())
}

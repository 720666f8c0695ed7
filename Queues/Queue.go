package Queues

// Queue is an unbounded FIFO container. Implementations in this package are
// not safe for concurrent use.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop removes and returns the front item. Returns EmptyQueueError if
	//there's nothing to pop.
	Pop() (T, error)
	//Peek at the front item without removing it. The zero value of T is
	//returned when the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
}

type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the underlying array to fit the current content.
	Shrink()
	//Clear the queue without releasing the underlying array.
	Clear()
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

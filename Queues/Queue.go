package Queues

// Queue is a first-in-first-out queue.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns *EmptyQueueError if there's none.
	Pop() (T, error)
	// Peek at the oldest item without removing it. Zero value if empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

// Package queue provides the FIFO structures used by the parser.
package queue

import "github.com/ef-ds/deque"

// Q is a typed FIFO queue backed by a deque. Dequeue is O(1).
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q holding items in the given order
func New[T any](items ...T) *Q[T] {
	q := &Q[T]{d: deque.New()}
	for _, item := range items {
		q.d.PushBack(item)
	}

	return q
}

// Dequeue removes and returns the first item of the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Peek returns the first item of the queue without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

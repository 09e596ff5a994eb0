package collections

import (
	"fmt"
	"iter"
	"slices"

	"github.com/therobotinitiative/Halcyon/halcyon"
)

// ErrQueueFull is returned by BoundedQueue.Add when the queue is at capacity.
var ErrQueueFull = fmt.Errorf("%w: bounded queue is at capacity", halcyon.ErrRefused)

// BoundedQueue is a FIFO queue holding at most a fixed number of values.
// It is not safe for concurrent use.
type BoundedQueue[T comparable] struct {
	items    []T
	capacity int
}

// NewBoundedQueue creates an empty queue. A capacity below one yields a queue that
// refuses every insertion.
func NewBoundedQueue[T comparable](capacity int) *BoundedQueue[T] {
	capacity = max(capacity, 0)

	return &BoundedQueue[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Add appends value to the tail, or returns ErrQueueFull.
func (q *BoundedQueue[T]) Add(value T) error {
	if len(q.items) >= q.capacity {
		return ErrQueueFull
	}

	q.items = append(q.items, value)

	return nil
}

// Len returns the number of queued values.
func (q *BoundedQueue[T]) Len() int {
	return len(q.items)
}

// Cap returns the queue capacity.
func (q *BoundedQueue[T]) Cap() int {
	return q.capacity
}

// All yields the queued values from head to tail.
func (q *BoundedQueue[T]) All() iter.Seq[T] {
	return slices.Values(q.items)
}

// Remove deletes the first queued value equal to value.
func (q *BoundedQueue[T]) Remove(value T) bool {
	i := slices.Index(q.items, value)
	if i < 0 {
		return false
	}

	q.items = slices.Delete(q.items, i, i+1)

	return true
}

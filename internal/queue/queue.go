// Package queue holds journal records between write cycles.
package queue

import "sync"

// Queue is a mutex-guarded FIFO of pending journal rows. The zero value is
// ready to use.
type Queue[T any] struct {
	mu      sync.Mutex
	pending []T
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends items in order.
func (q *Queue[T]) Push(items ...T) {
	q.mu.Lock()
	q.pending = append(q.pending, items...)
	q.mu.Unlock()
}

// Requeue puts items back at the head of the queue, ahead of anything pushed
// since they were drained, so a failed write keeps its place.
func (q *Queue[T]) Requeue(items []T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(append(make([]T, 0, len(items)+len(q.pending)), items...), q.pending...)
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Drain hands over everything pending. The returned slice is owned by the
// caller; later pushes never write into it.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.pending
	q.pending = nil
	return items
}

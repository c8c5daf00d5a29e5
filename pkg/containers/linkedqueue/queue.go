// Package linkedqueue provides a FIFO queue built on a singly linked list.
package linkedqueue

import "iter"

type node[T any] struct {
	item T
	next *node[T]
}

// Queue is a FIFO queue. The zero value is an empty queue ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	n := &node[T]{item: item}
	if q.last == nil {
		q.first = n
	} else {
		q.last.next = n
	}
	q.last = n
	q.size++
}

// Dequeue removes the item at the front of the queue. It returns false when
// the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.first == nil {
		var zero T
		return zero, false
	}

	n := q.first
	q.first = n.next
	if q.first == nil {
		q.last = nil
	}
	q.size--

	return n.item, true
}

// Peek returns the item at the front of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.first == nil {
		var zero T
		return zero, false
	}
	return q.first.item, true
}

// Remove deletes the k-th item counted from the front, starting at 0, and
// returns it. It returns false and leaves the queue untouched when k is out
// of range.
func (q *Queue[T]) Remove(k int) (T, bool) {
	if k < 0 || k >= q.size {
		var zero T
		return zero, false
	}
	if k == 0 {
		return q.Dequeue()
	}

	prev := q.first
	for i := 1; i < k; i++ {
		prev = prev.next
	}

	n := prev.next
	prev.next = n.next
	if n == q.last {
		q.last = prev
	}
	q.size--

	return n.item, true
}

// Clear drops every item.
func (q *Queue[T]) Clear() {
	q.first, q.last = nil, nil
	q.size = 0
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// All returns an iterator over the items from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.first; n != nil; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

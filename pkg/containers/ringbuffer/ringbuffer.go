// Package ringbuffer provides a fixed-capacity FIFO buffer over a circular
// array.
package ringbuffer

import (
	"errors"
	"iter"
)

var (
	ErrInvalidCapacity = errors.New("ring buffer capacity must be greater than zero")
	ErrBufferFull      = errors.New("ring buffer is full")
	ErrBufferEmpty     = errors.New("ring buffer is empty")
)

// RingBuffer holds at most Cap() items. Put fails on a full buffer instead of
// overwriting the oldest item. A RingBuffer is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf  []T
	rpos int
	wpos int
	n    int
}

func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &RingBuffer[T]{buf: make([]T, capacity)}, nil
}

// Put appends item as the newest entry.
func (b *RingBuffer[T]) Put(item T) error {
	if b.IsFull() {
		return ErrBufferFull
	}

	b.buf[b.wpos] = item
	b.wpos = (b.wpos + 1) % len(b.buf)
	b.n++

	return nil
}

// Get removes and returns the oldest entry.
func (b *RingBuffer[T]) Get() (T, error) {
	var zero T
	if b.IsEmpty() {
		return zero, ErrBufferEmpty
	}

	item := b.buf[b.rpos]
	b.buf[b.rpos] = zero
	b.rpos = (b.rpos + 1) % len(b.buf)
	b.n--

	return item, nil
}

// Peek returns the oldest entry without removing it.
func (b *RingBuffer[T]) Peek() (T, error) {
	if b.IsEmpty() {
		var zero T
		return zero, ErrBufferEmpty
	}
	return b.buf[b.rpos], nil
}

// Reset drops every entry and keeps the capacity.
func (b *RingBuffer[T]) Reset() {
	clear(b.buf)
	b.rpos, b.wpos, b.n = 0, 0, 0
}

func (b *RingBuffer[T]) Len() int {
	return b.n
}

func (b *RingBuffer[T]) Cap() int {
	return len(b.buf)
}

func (b *RingBuffer[T]) IsFull() bool {
	return b.n == len(b.buf)
}

func (b *RingBuffer[T]) IsEmpty() bool {
	return b.n == 0
}

// All returns an iterator over the entries from the oldest to the newest.
func (b *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(b.buf[(b.rpos+i)%len(b.buf)]) {
				return
			}
		}
	}
}

// Package arraystack provides a LIFO stack stored in one contiguous buffer
// that grows by reallocation.
package arraystack

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrNegativeCapacity is returned by NewWithCapacity when asked for a
// negative number of slots.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

const growthFactor = 2

// Stack is a LIFO container over a contiguous buffer.
//
// Slots in [0, Len()) hold live items and slots in [Len(), Cap()) are
// allocated but unconstructed. Pushing onto a full stack allocates a buffer
// of (Cap()+1)*2 slots and moves the live items into it. The stack never
// shrinks on Pop.
//
// Growth invalidates every Iterator and ReverseIterator taken before it.
// Invalidated iterators report Valid() == false and yield no values, they
// must be retaken from the stack.
//
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	buf       buffer[T]
	firstFree int

	// generation is bumped every time buf is replaced.
	generation uint64
}

// New returns a stack with room for capacity items. A capacity of zero or
// less allocates nothing, the first Push grows the buffer.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{buf: allocate[T](capacity)}
}

// NewWithCapacity is like New but rejects a negative capacity.
func NewWithCapacity[T any](capacity int) (*Stack[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return New[T](capacity), nil
}

// Len returns the number of items on the stack, or 0 if s is nil.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.firstFree
}

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int {
	return s.buf.capacity()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Push places item on top of the stack, growing the buffer when it is full.
func (s *Stack[T]) Push(item T) {
	if s.firstFree == s.buf.capacity() {
		s.reallocate()
	}
	s.buf.construct(s.firstFree, item)
	s.firstFree++
}

// Pop removes the top item and returns it. On an empty stack it returns the
// zero value and false and leaves the stack untouched.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}

	s.firstFree--
	item := s.buf.at(s.firstFree)
	s.buf.destroy(s.firstFree)

	return item, true
}

// PopOrZero is Pop without the presence flag. The zero value it returns for
// an empty stack cannot be told apart from a stored zero value.
func (s *Stack[T]) PopOrZero() T {
	item, _ := s.Pop()
	return item
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.buf.at(s.firstFree - 1), true
}

// PeekOrZero is Peek without the presence flag.
func (s *Stack[T]) PeekOrZero() T {
	item, _ := s.Peek()
	return item
}

// Clear destroys every item, last pushed first, and keeps the buffer.
func (s *Stack[T]) Clear() {
	s.buf.destroyRange(0, s.firstFree)
	s.firstFree = 0
}

// Release destroys every item and frees the buffer. The stack remains usable
// and grows again on the next Push. Outstanding iterators are invalidated.
func (s *Stack[T]) Release() {
	s.Clear()
	s.buf = buffer[T]{}
	s.generation++
}

func (s *Stack[T]) reallocate() {
	next := allocate[T](newCapacity(s.buf.capacity()))
	moved := s.buf.moveInto(next, s.firstFree)

	s.buf = next
	s.firstFree = moved
	s.generation++
}

func newCapacity(capacity int) int {
	return (capacity + 1) * growthFactor
}

// All returns an iterator over index-item pairs from the bottom of the stack
// to the top.
func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.buf.at(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the items from the bottom to the top.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-item pairs from the top of the
// stack to the bottom, the order in which Pop would return them.
func (s *Stack[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			if i >= s.Len() {
				continue
			}
			if !yield(i, s.buf.at(i)) {
				return
			}
		}
	}
}

func (s *Stack[T]) String() string {
	sb := &strings.Builder{}
	sb.WriteRune('[')
	for i, item := range s.All() {
		if i > 0 {
			sb.WriteRune(' ')
		}
		fmt.Fprint(sb, item)
	}
	sb.WriteRune(']')
	return sb.String()
}

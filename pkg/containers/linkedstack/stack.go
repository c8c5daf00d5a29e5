// Package linkedstack provides a LIFO stack built on a singly linked list.
package linkedstack

import "iter"

// frame is one link of the stack. Frames are never mutated once linked, so
// pushing and popping only move the stack's head.
type frame[T any] struct {
	value T
	next  *frame[T]
}

func push[T any](top *frame[T], value T) *frame[T] {
	return &frame[T]{value: value, next: top}
}

func pop[T any](top *frame[T]) (T, *frame[T]) {
	return top.value, top.next
}

// Stack is a LIFO stack. The zero value is an empty stack ready to use.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	top  *frame[T]
	size int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.top = push(s.top, value)
	s.size++
}

// Pop removes the top value and returns it. It returns false when the stack
// is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}

	var value T
	value, s.top = pop(s.top)
	s.size--

	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	return s.top.value, true
}

// Clear drops every value.
func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}

func (s *Stack[T]) Len() int {
	return s.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// All returns an iterator over the values from the top to the bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for f := s.top; f != nil; f = f.next {
			if !yield(f.value) {
				return
			}
		}
	}
}

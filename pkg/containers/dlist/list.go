// Package dlist implements a doubly linked list whose nodes live in an arena
// and link to each other by index.
package dlist

import (
	"fmt"
	"iter"
	"strings"
)

// nilIndex marks the absence of a neighbour. Slot 0 of the arena is reserved
// so that the zero value of a List is an empty list.
const nilIndex int32 = 0

type node[T comparable] struct {
	item T
	prev int32
	next int32

	// generation is bumped whenever the slot is released, which makes
	// handles to the previous occupant stale.
	generation uint32
	live       bool
}

// Handle identifies a node of a List. Handles stay valid until the node they
// point at is removed; after that every method taking the handle reports
// false.
type Handle struct {
	index      int32
	generation uint32
}

// List is a sequence of items supporting O(1) insertion and removal at either
// end and splicing next to an item located by value.
//
// Value based operations (Find, PutBefore, PutAfter, Remove) always act on
// the first matching item from the front. The zero value is an empty list
// ready to use. A List is not safe for concurrent use.
type List[T comparable] struct {
	nodes []node[T]

	// free is the head of the list of released slots, threaded through
	// node.next.
	free  int32
	left  int32
	right int32
	count int
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	return l.count
}

func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// Front returns the leftmost item.
func (l *List[T]) Front() (T, bool) {
	return l.itemAt(l.left)
}

// Back returns the rightmost item.
func (l *List[T]) Back() (T, bool) {
	return l.itemAt(l.right)
}

// PushLeft inserts item at the front of the list.
func (l *List[T]) PushLeft(item T) Handle {
	i := l.alloc(item)
	l.nodes[i].next = l.left
	if l.left != nilIndex {
		l.nodes[l.left].prev = i
	} else {
		l.right = i
	}
	l.left = i
	l.count++
	return l.handle(i)
}

// PushRight inserts item at the back of the list.
func (l *List[T]) PushRight(item T) Handle {
	i := l.alloc(item)
	l.nodes[i].prev = l.right
	if l.right != nilIndex {
		l.nodes[l.right].next = i
	} else {
		l.left = i
	}
	l.right = i
	l.count++
	return l.handle(i)
}

// Find returns a handle to the first node holding item.
func (l *List[T]) Find(item T) (Handle, bool) {
	i := l.find(item)
	if i == nilIndex {
		return Handle{}, false
	}
	return l.handle(i), true
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item T) bool {
	return l.find(item) != nilIndex
}

// PutBefore inserts item right before the first occurrence of anchor. It
// returns false, leaving the list unchanged, when anchor is absent.
func (l *List[T]) PutBefore(anchor, item T) bool {
	at := l.find(anchor)
	if at == nilIndex {
		return false
	}

	i := l.alloc(item)
	prev := l.nodes[at].prev
	l.nodes[i].prev = prev
	l.nodes[i].next = at
	l.nodes[at].prev = i
	if prev != nilIndex {
		l.nodes[prev].next = i
	} else {
		l.left = i
	}
	l.count++
	return true
}

// PutAfter inserts item right after the first occurrence of anchor. It
// returns false, leaving the list unchanged, when anchor is absent.
func (l *List[T]) PutAfter(anchor, item T) bool {
	at := l.find(anchor)
	if at == nilIndex {
		return false
	}

	i := l.alloc(item)
	next := l.nodes[at].next
	l.nodes[i].next = next
	l.nodes[i].prev = at
	l.nodes[at].next = i
	if next != nilIndex {
		l.nodes[next].prev = i
	} else {
		l.right = i
	}
	l.count++
	return true
}

// Remove deletes the first occurrence of item and reports whether there was
// one.
func (l *List[T]) Remove(item T) bool {
	i := l.find(item)
	if i == nilIndex {
		return false
	}
	l.unlink(i)
	return true
}

// RemoveHandle deletes the node h points at. It returns false for a stale
// handle.
func (l *List[T]) RemoveHandle(h Handle) bool {
	if _, ok := l.lookup(h); !ok {
		return false
	}
	l.unlink(h.index)
	return true
}

// DeleteFront removes the leftmost node. It does nothing on an empty list.
func (l *List[T]) DeleteFront() {
	l.PopLeft()
}

// DeleteBack removes the rightmost node. It does nothing on an empty list.
func (l *List[T]) DeleteBack() {
	l.PopRight()
}

// PopLeft removes the leftmost node and returns its item.
func (l *List[T]) PopLeft() (T, bool) {
	item, ok := l.itemAt(l.left)
	if ok {
		l.unlink(l.left)
	}
	return item, ok
}

// PopRight removes the rightmost node and returns its item.
func (l *List[T]) PopRight() (T, bool) {
	item, ok := l.itemAt(l.right)
	if ok {
		l.unlink(l.right)
	}
	return item, ok
}

// Clear removes every node. Handles taken before Clear become stale.
func (l *List[T]) Clear() {
	for i := l.left; i != nilIndex; {
		next := l.nodes[i].next
		l.release(i)
		i = next
	}
	l.left, l.right = nilIndex, nilIndex
	l.count = 0
}

// First returns a handle to the leftmost node.
func (l *List[T]) First() (Handle, bool) {
	if l.left == nilIndex {
		return Handle{}, false
	}
	return l.handle(l.left), true
}

// Last returns a handle to the rightmost node.
func (l *List[T]) Last() (Handle, bool) {
	if l.right == nilIndex {
		return Handle{}, false
	}
	return l.handle(l.right), true
}

// Value returns the item held by the node h points at.
func (l *List[T]) Value(h Handle) (T, bool) {
	n, ok := l.lookup(h)
	if !ok {
		var zero T
		return zero, false
	}
	return n.item, true
}

// Next returns a handle to the node following h.
func (l *List[T]) Next(h Handle) (Handle, bool) {
	n, ok := l.lookup(h)
	if !ok || n.next == nilIndex {
		return Handle{}, false
	}
	return l.handle(n.next), true
}

// Prev returns a handle to the node preceding h.
func (l *List[T]) Prev(h Handle) (Handle, bool) {
	n, ok := l.lookup(h)
	if !ok || n.prev == nilIndex {
		return Handle{}, false
	}
	return l.handle(n.prev), true
}

// All returns an iterator over the items from front to back. Removing the
// item being visited is allowed.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.left; i != nilIndex; {
			n := l.nodes[i]
			if !n.live || !yield(n.item) {
				return
			}
			i = l.step(i, n, func(n node[T]) int32 { return n.next })
		}
	}
}

// Backward returns an iterator over the items from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.right; i != nilIndex; {
			n := l.nodes[i]
			if !n.live || !yield(n.item) {
				return
			}
			i = l.step(i, n, func(n node[T]) int32 { return n.prev })
		}
	}
}

// step follows link from slot i once the iterators have yielded visited. If
// the node was removed meanwhile the link it had when visited is used.
func (l *List[T]) step(i int32, visited node[T], link func(node[T]) int32) int32 {
	current := l.nodes[i]
	if current.live && current.generation == visited.generation {
		return link(current)
	}
	return link(visited)
}

// Slice copies the items, front to back, into a new slice.
func (l *List[T]) Slice() []T {
	items := make([]T, 0, l.count)
	for item := range l.All() {
		items = append(items, item)
	}
	return items
}

func (l *List[T]) String() string {
	sb := &strings.Builder{}
	sb.WriteRune('[')
	first := true
	for item := range l.All() {
		if !first {
			sb.WriteRune(' ')
		}
		first = false
		fmt.Fprint(sb, item)
	}
	sb.WriteRune(']')
	return sb.String()
}

func (l *List[T]) find(item T) int32 {
	for i := l.left; i != nilIndex; i = l.nodes[i].next {
		if l.nodes[i].item == item {
			return i
		}
	}
	return nilIndex
}

func (l *List[T]) itemAt(i int32) (T, bool) {
	if i == nilIndex {
		var zero T
		return zero, false
	}
	return l.nodes[i].item, true
}

func (l *List[T]) handle(i int32) Handle {
	return Handle{index: i, generation: l.nodes[i].generation}
}

func (l *List[T]) lookup(h Handle) (*node[T], bool) {
	if h.index == nilIndex || int(h.index) >= len(l.nodes) {
		return nil, false
	}
	n := &l.nodes[h.index]
	if !n.live || n.generation != h.generation {
		return nil, false
	}
	return n, true
}

// unlink detaches node i from its neighbours, fixes left and right when i
// was an end, and releases the slot.
func (l *List[T]) unlink(i int32) {
	prev, next := l.nodes[i].prev, l.nodes[i].next
	if prev != nilIndex {
		l.nodes[prev].next = next
	} else {
		l.left = next
	}
	if next != nilIndex {
		l.nodes[next].prev = prev
	} else {
		l.right = prev
	}
	l.release(i)
	l.count--
}

// alloc places item in a free slot, or a new one, and returns its index.
// Growing the arena may move it, so callers hold indexes and never pointers
// to nodes across alloc.
func (l *List[T]) alloc(item T) int32 {
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{})
	}

	var i int32
	if l.free != nilIndex {
		i = l.free
		l.free = l.nodes[i].next
	} else {
		l.nodes = append(l.nodes, node[T]{})
		i = int32(len(l.nodes) - 1)
	}

	n := &l.nodes[i]
	n.item = item
	n.prev, n.next = nilIndex, nilIndex
	n.live = true
	return i
}

func (l *List[T]) release(i int32) {
	var zero T
	n := &l.nodes[i]
	n.item = zero
	n.prev = nilIndex
	n.next = l.free
	n.live = false
	n.generation++
	l.free = i
}

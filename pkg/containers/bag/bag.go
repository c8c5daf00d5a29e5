// Package bag provides an add-only collection of values.
package bag

import "iter"

// node facilitates a basic link-list data type.
type node[T any] struct {
	value T
	next  *node[T]
}

// Bag is a type that holds values of T. Values can be added to the Bag and
// enumerated, but not indexed or removed one by one. Duplicates are kept.
// A zero value Bag can be used without initialization. A Bag is not safe for
// concurrent use.
type Bag[T any] struct {
	head *node[T]
	size int
}

// Add adds the provided values to the Bag. The last value becomes the first
// one enumerated.
func (b *Bag[T]) Add(v ...T) {
	for _, value := range v {
		b.head = &node[T]{value: value, next: b.head}
	}
	b.size += len(v)
}

func (b *Bag[T]) Len() int {
	return b.size
}

func (b *Bag[T]) IsEmpty() bool {
	return b.size == 0
}

// All returns an iterator over the values in the Bag, most recently added
// first.
func (b *Bag[T]) All() iter.Seq[T] {
	head := b.head
	return func(yield func(T) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Drain empties the Bag and returns an iterator over the values it held, in
// the same order as All.
func (b *Bag[T]) Drain() iter.Seq[T] {
	values := b.All()
	b.head = nil
	b.size = 0
	return values
}

package arraystack

// buffer owns the slots backing a Stack. Allocation and object lifetime are
// separate steps. A destroyed slot holds the zero value and keeps no
// reference to the item it held.
//
// Which slots are live is not tracked here, the owning Stack keeps that
// cursor.
type buffer[T any] struct {
	slots []T
}

// allocate reserves capacity unconstructed slots. A zero capacity allocates
// nothing.
func allocate[T any](capacity int) buffer[T] {
	if capacity <= 0 {
		return buffer[T]{}
	}
	return buffer[T]{slots: make([]T, capacity)}
}

func (b buffer[T]) capacity() int {
	return len(b.slots)
}

func (b buffer[T]) construct(i int, item T) {
	b.slots[i] = item
}

func (b buffer[T]) at(i int) T {
	return b.slots[i]
}

func (b buffer[T]) destroy(i int) {
	var zero T
	b.slots[i] = zero
}

// destroyRange destroys the slots in [from, to) starting from the highest.
func (b buffer[T]) destroyRange(from, to int) {
	for i := to; i > from; {
		i--
		b.destroy(i)
	}
}

// moveInto transfers the first n items into dst, preserving their order,
// and destroys them in b. It returns the number of items moved.
func (b buffer[T]) moveInto(dst buffer[T], n int) int {
	moved := copy(dst.slots, b.slots[:n])
	b.destroyRange(0, moved)
	return moved
}

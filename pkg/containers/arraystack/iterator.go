package arraystack

// Iterator is a position in a Stack's buffer, counted from the bottom.
// Begin() is the bottom item and End() is one past the top.
//
// An Iterator is a value; Next, Prev and Add return moved copies. It becomes
// invalid as soon as the stack reallocates its buffer.
type Iterator[T any] struct {
	s          *Stack[T]
	pos        int
	generation uint64
}

// Begin returns an iterator at the bottom item.
func (s *Stack[T]) Begin() Iterator[T] {
	return s.iteratorAt(0)
}

// End returns an iterator one past the top item.
func (s *Stack[T]) End() Iterator[T] {
	return s.iteratorAt(s.firstFree)
}

func (s *Stack[T]) iteratorAt(pos int) Iterator[T] {
	return Iterator[T]{s: s, pos: pos, generation: s.generation}
}

// Valid reports whether the buffer the iterator was taken from is still the
// stack's buffer.
func (it Iterator[T]) Valid() bool {
	return it.s != nil && it.generation == it.s.generation
}

// Value returns the item under the iterator. It returns false when the
// iterator is invalid or does not point at a live item, End() included.
func (it Iterator[T]) Value() (T, bool) {
	if !it.Valid() || it.pos < 0 || it.pos >= it.s.firstFree {
		var zero T
		return zero, false
	}
	return it.s.buf.at(it.pos), true
}

// Index returns the position relative to Begin().
func (it Iterator[T]) Index() int {
	return it.pos
}

func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add moves the iterator n positions towards the top; negative n moves it
// towards the bottom.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Equal reports whether both iterators point at the same position of the
// same buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.s == other.s && it.generation == other.generation && it.pos == other.pos
}

// ReverseIterator walks a Stack from the top to the bottom. It wraps a base
// Iterator and dereferences the slot just below it, so RBegin() wraps End()
// and yields the top item while REnd() wraps Begin().
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse iterator at the top item.
func (s *Stack[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: s.End()}
}

// REnd returns a reverse iterator one past the bottom item.
func (s *Stack[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: s.Begin()}
}

// Base returns the wrapped forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base
}

func (it ReverseIterator[T]) Valid() bool {
	return it.base.Valid()
}

func (it ReverseIterator[T]) Value() (T, bool) {
	return it.base.Prev().Value()
}

func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return it.Add(1)
}

func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return it.Add(-1)
}

// Add moves the iterator n positions towards the bottom.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Add(-n)}
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.base.Equal(other.base)
}

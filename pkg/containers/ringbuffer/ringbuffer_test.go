package ringbuffer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := New[int](capacity)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	}

	b, err := New[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, b.Cap())
	require.True(t, b.IsEmpty())
}

func TestRingBuffer(t *testing.T) {
	size := 256
	b, err := New[int](size)
	require.NoError(t, err)

	_, err = b.Get()
	require.ErrorIs(t, err, ErrBufferEmpty)
	_, err = b.Peek()
	require.ErrorIs(t, err, ErrBufferEmpty)

	for i := 0; i < size; i++ {
		require.NoError(t, b.Put(i))
	}
	require.True(t, b.IsFull())

	err = b.Put(size)
	require.ErrorIs(t, err, ErrBufferFull)

	for i := 0; i < size; i++ {
		v, err := b.Get()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}

	_, err = b.Get()
	require.ErrorIs(t, err, ErrBufferEmpty)
}

func TestWrapAround(t *testing.T) {
	b, err := New[string](3)
	require.NoError(t, err)

	require.NoError(t, b.Put("a"))
	require.NoError(t, b.Put("b"))
	v, err := b.Get()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	require.NoError(t, b.Put("c"))
	require.NoError(t, b.Put("d"))
	require.ErrorIs(t, b.Put("e"), ErrBufferFull)

	require.Equal(t, []string{"b", "c", "d"}, slices.Collect(b.All()))
	head, err := b.Peek()
	require.NoError(t, err)
	require.Equal(t, "b", head)
	require.Equal(t, 3, b.Len())

	b.Reset()
	require.True(t, b.IsEmpty())
	b.Reset()
	require.Equal(t, 0, b.Len())
	require.NoError(t, b.Put("f"))
	require.Equal(t, []string{"f"}, slices.Collect(b.All()))
}

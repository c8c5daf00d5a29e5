package bag

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBag(t *testing.T) {
	var b Bag[int]
	require.True(t, b.IsEmpty())

	for i := range 1000 {
		b.Add(i + 1)
	}
	require.Equal(t, 1000, b.Len())

	var count int

	cmp := 1000
	for i := range b.All() {
		require.Equal(t, cmp, i)
		cmp--
		count++
	}
	require.Equal(t, 1000, count)
	require.Equal(t, 1000, b.Len())
}

func TestBagKeepsDuplicates(t *testing.T) {
	var b Bag[string]
	b.Add("a", "b", "a")

	require.Equal(t, []string{"a", "b", "a"}, slices.Collect(b.All()))
	require.Equal(t, 3, b.Len())
}

func TestBagDrain(t *testing.T) {
	var b Bag[int]
	b.Add(1, 2, 3)

	values := b.Drain()
	require.True(t, b.IsEmpty())
	require.Equal(t, []int{3, 2, 1}, slices.Collect(values))

	b.Add(4)
	require.Equal(t, []int{4}, slices.Collect(b.All()))
}

func BenchmarkBag(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var b Bag[int]
		for i := range 1000 {
			b.Add(i)
		}
	}
}

package linkedqueue

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("new_queue_is_empty", func(t *testing.T) {
		q := New[string]()
		require.True(t, q.IsEmpty())
		require.Equal(t, 0, q.Len())

		_, ok := q.Dequeue()
		require.False(t, ok)
		_, ok = q.Peek()
		require.False(t, ok)
	})

	t.Run("fifo_order", func(t *testing.T) {
		var q Queue[string]
		for _, s := range []string{"item1", "item2", "item3", "item4"} {
			q.Enqueue(s)
		}
		require.Equal(t, 4, q.Len())

		head, ok := q.Peek()
		require.True(t, ok)
		require.Equal(t, "item1", head)

		for _, expected := range []string{"item1", "item2", "item3", "item4"} {
			item, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, expected, item)
		}
		require.True(t, q.IsEmpty())

		q.Enqueue("again")
		require.Equal(t, []string{"again"}, slices.Collect(q.All()))
	})

	t.Run("clear_twice", func(t *testing.T) {
		q := New[int]()
		q.Enqueue(1)

		q.Clear()
		require.Equal(t, 0, q.Len())
		q.Clear()
		require.Equal(t, 0, q.Len())
		require.Empty(t, slices.Collect(q.All()))
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		k        int
		removed  string
		ok       bool
		expected []string
	}{
		{
			name:     "first",
			k:        0,
			removed:  "item1",
			ok:       true,
			expected: []string{"item2", "item3", "item4"},
		},
		{
			name:     "middle",
			k:        2,
			removed:  "item3",
			ok:       true,
			expected: []string{"item1", "item2", "item4"},
		},
		{
			name:     "last",
			k:        3,
			removed:  "item4",
			ok:       true,
			expected: []string{"item1", "item2", "item3"},
		},
		{
			name:     "out_of_range",
			k:        4,
			ok:       false,
			expected: []string{"item1", "item2", "item3", "item4"},
		},
		{
			name:     "negative",
			k:        -1,
			ok:       false,
			expected: []string{"item1", "item2", "item3", "item4"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			q := New[string]()
			for _, s := range []string{"item1", "item2", "item3", "item4"} {
				q.Enqueue(s)
			}

			removed, ok := q.Remove(test.k)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.removed, removed)
			require.Equal(t, test.expected, slices.Collect(q.All()))
			require.Equal(t, len(test.expected), q.Len())
		})
	}

	t.Run("last_then_enqueue_links_new_tail", func(t *testing.T) {
		t.Parallel()

		q := New[int]()
		q.Enqueue(1)
		q.Enqueue(2)

		_, ok := q.Remove(1)
		require.True(t, ok)
		q.Enqueue(3)
		require.Equal(t, []int{1, 3}, slices.Collect(q.All()))
	})

	t.Run("sole_item", func(t *testing.T) {
		t.Parallel()

		q := New[int]()
		q.Enqueue(1)

		_, ok := q.Remove(0)
		require.True(t, ok)
		require.True(t, q.IsEmpty())
		q.Enqueue(2)
		require.Equal(t, []int{2}, slices.Collect(q.All()))
	})
}

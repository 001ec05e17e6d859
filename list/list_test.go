package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-acquire/errors"
)

func TestSliceList(t *testing.T) {
	t.Parallel()

	t.Run("add, get, set", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[string]()

		require.NoError(t, l.AddAll("a", "b", "c"))

		got, err := l.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "b", got)

		require.NoError(t, l.SetAt(1, "B"))

		entries, err := l.Entries()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "B", "c"}, entries)
	})

	t.Run("insert and remove shift elements", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(1, 3))

		require.NoError(t, l.Insert(1, 2))

		entries, err := l.Entries()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, entries)

		removed, err := l.RemoveAt(0)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		entries, err = l.Entries()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, entries)
	})

	t.Run("bounds are checked", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.Add(1))

		_, err := l.Get(1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

		_, err = l.Get(-1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

		require.ErrorIs(t, l.SetAt(5, 9), errors.ErrIndexOutOfRange)
		require.ErrorIs(t, l.Insert(2, 9), errors.ErrIndexOutOfRange)

		_, err = l.RemoveAt(1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

		require.NoError(t, l.Insert(1, 2), "insert at size appends")
	})

	t.Run("index of and contains", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[string]()
		require.NoError(t, l.AddAll("a", "b", "a"))

		index, err := l.IndexOf("a")
		require.NoError(t, err)
		assert.Equal(t, 0, index)

		index, err = l.IndexOf("missing")
		require.NoError(t, err)
		assert.Equal(t, -1, index)

		contains, err := l.Contains("b")
		require.NoError(t, err)
		assert.True(t, contains)
	})

	t.Run("no equality function", func(t *testing.T) {
		t.Parallel()

		l := NewSliceList[func()](nil)
		require.NoError(t, l.Add(func() {}))

		_, err := l.IndexOf(nil)
		require.ErrorIs(t, err, ErrEqualityUndefined)
	})

	t.Run("entries are a snapshot", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(1, 2))

		entries, err := l.Entries()
		require.NoError(t, err)

		require.NoError(t, l.Add(3))
		assert.Len(t, entries, 2)
	})

	t.Run("iterator and seq", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(10, 20, 30))

		var viaIterator []int

		it := l.Iterator()
		for it.Next() {
			viaIterator = append(viaIterator, it.Value())
		}

		require.NoError(t, it.Err())
		assert.Equal(t, []int{10, 20, 30}, viaIterator)

		var indices []int
		for i, element := range l.Seq() {
			indices = append(indices, i)

			assert.Equal(t, viaIterator[i], element)
		}

		assert.Equal(t, []int{0, 1, 2}, indices)
	})
}

func TestListViews(t *testing.T) {
	t.Parallel()

	t.Run("sub-list reads and writes through", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[string]()
		require.NoError(t, l.AddAll("a", "b", "c", "d"))

		sub, err := l.SubList(1, 3)
		require.NoError(t, err)

		size, err := sub.Size()
		require.NoError(t, err)
		assert.Equal(t, 2, size)

		got, err := sub.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "b", got)

		require.NoError(t, sub.SetAt(1, "C"))

		got, err = l.Get(2)
		require.NoError(t, err)
		assert.Equal(t, "C", got, "sub-list writes reach the backing list")
	})

	t.Run("sub-list rejects structural mutation", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(1, 2, 3))

		sub, err := l.SubList(0, 2)
		require.NoError(t, err)

		require.ErrorIs(t, sub.Add(9), errors.ErrReadOnlyView)
		require.ErrorIs(t, sub.Insert(0, 9), errors.ErrReadOnlyView)
		require.ErrorIs(t, sub.Clear(), errors.ErrReadOnlyView)

		_, err = sub.RemoveAt(0)
		require.ErrorIs(t, err, errors.ErrReadOnlyView)
	})

	t.Run("sub-list bounds", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(1, 2))

		_, err := l.SubList(0, 3)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

		_, err = l.SubList(-1, 1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

		_, err = l.SubList(2, 1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	})

	t.Run("reversed view", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(1, 2, 3))

		reversed := l.Reversed()

		entries, err := reversed.Entries()
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, entries)

		// The view tracks the backing list.
		require.NoError(t, l.Add(4))

		got, err := reversed.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 4, got)

		index, err := reversed.IndexOf(4)
		require.NoError(t, err)
		assert.Equal(t, 0, index)
	})

	t.Run("views compose", func(t *testing.T) {
		t.Parallel()

		l := NewComparable[int]()
		require.NoError(t, l.AddAll(1, 2, 3, 4))

		sub, err := l.SubList(1, 4)
		require.NoError(t, err)

		reversed := sub.Reversed()

		entries, err := reversed.Entries()
		require.NoError(t, err)
		assert.Equal(t, []int{4, 3, 2}, entries)
	})
}

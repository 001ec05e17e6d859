package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	t.Parallel()

	t.Run("walks all elements", func(t *testing.T) {
		t.Parallel()

		it := FromSlice([]int{1, 2, 3})

		var got []int
		for it.Next() {
			got = append(got, it.Value())
		}

		require.NoError(t, it.Err())
		assert.Equal(t, []int{1, 2, 3}, got)

		assert.False(t, it.Next(), "exhausted iterator stays exhausted")
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()

		it := FromSlice[string](nil)
		assert.False(t, it.Next())
		require.NoError(t, it.Err())
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	got, err := Collect(FromSlice([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(FromSlice([]int{1, 2}), func(v int) int { return v * 2 })

	got, err := Collect(doubled)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)
}

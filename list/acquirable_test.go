package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-acquire/compare"
	"github.com/amp-labs/amp-acquire/errors"
)

func TestAcquirable(t *testing.T) {
	t.Parallel()

	t.Run("initial contents are copied in", func(t *testing.T) {
		t.Parallel()

		initial := []string{"a", "b"}
		acquirable := NewAcquirable(compare.ByOperator[string](), initial...)

		// Mutating the source slice does not affect the acquirable.
		initial[0] = "mutated"

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		got, err := access.View().Get(0)
		require.NoError(t, err)
		assert.Equal(t, "a", got)
	})

	// An acquisition handed to another goroutine rejects every use there,
	// and the rejected mutation leaves the list unchanged.
	t.Run("view handed to another goroutine fails", func(t *testing.T) {
		t.Parallel()

		acquirable := NewAcquirable(compare.ByOperator[string]())

		access, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		require.NoError(t, access.View().Add("a"))

		done := make(chan error, 1)

		go func() {
			done <- access.View().Add("b")
		}()

		require.ErrorIs(t, <-done, errors.ErrNotOwner)

		entries, err := access.View().Entries()
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, entries)

		require.NoError(t, access.Close())
	})

	t.Run("read view rejects mutation", func(t *testing.T) {
		t.Parallel()

		acquirable := NewAcquirable(compare.ByOperator[int](), 1)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		require.ErrorIs(t, access.View().Add(2), errors.ErrReadOnlyView)
		require.ErrorIs(t, access.View().SetAt(0, 9), errors.ErrReadOnlyView)
	})

	t.Run("guarded sub-views die with the acquisition", func(t *testing.T) {
		t.Parallel()

		acquirable := NewAcquirable(compare.ByOperator[int](), 1, 2, 3)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		sub, err := access.View().SubList(0, 2)
		require.NoError(t, err)

		reversed := access.View().Reversed()

		got, err := sub.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = reversed.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 3, got)

		require.NoError(t, access.Close())

		_, err = sub.Get(0)
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)

		_, err = reversed.Get(0)
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)
	})

	t.Run("iterator dies with the acquisition", func(t *testing.T) {
		t.Parallel()

		acquirable := NewAcquirable(compare.ByOperator[int](), 1, 2)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		it := access.View().Iterator()
		require.True(t, it.Next())

		require.NoError(t, access.Close())

		assert.False(t, it.Next())
		require.ErrorIs(t, it.Err(), errors.ErrAlreadyUnlocked)
	})

	t.Run("write then read round trip", func(t *testing.T) {
		t.Parallel()

		acquirable := NewAcquirable(compare.ByOperator[string]())

		writer, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		require.NoError(t, writer.View().AddAll("x", "y"))
		require.NoError(t, writer.Close())

		reader, err := acquirable.AcquireRead()
		require.NoError(t, err)

		entries, err := reader.View().Entries()
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, entries)

		require.NoError(t, reader.Close())
	})
}

package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/hashing"
)

func TestAcquirable(t *testing.T) {
	t.Parallel()

	t.Run("initial contents are copied in", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256, "a", "b")
		require.NoError(t, err)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		size, err := access.View().Size()
		require.NoError(t, err)
		assert.Equal(t, 2, size)
	})

	t.Run("read view rejects mutation", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256)
		require.NoError(t, err)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		require.ErrorIs(t, access.View().Add("x"), errors.ErrReadOnlyView)
	})

	t.Run("write view mutates and read view observes", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256)
		require.NoError(t, err)

		writer, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		reader, err := acquirable.AcquireRead()
		require.NoError(t, err)

		require.NoError(t, writer.View().Add("x"))

		contains, err := reader.View().Contains("x")
		require.NoError(t, err)
		assert.True(t, contains, "mutation is visible through the live read view")

		require.NoError(t, reader.Close())
		require.NoError(t, writer.Close())
	})

	t.Run("view dies with its acquisition", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256, "a")
		require.NoError(t, err)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		view := access.View()
		require.NoError(t, access.Close())

		_, err = view.Size()
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)

		_, err = view.Contains("a")
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)
	})

	t.Run("iterator dies with its acquisition", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256, "a", "b")
		require.NoError(t, err)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		it := access.View().Iterator()
		require.True(t, it.Next())

		require.NoError(t, access.Close())

		assert.False(t, it.Next())
		require.ErrorIs(t, it.Err(), errors.ErrAlreadyUnlocked)
	})

	t.Run("view is pinned to the owner goroutine", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256)
		require.NoError(t, err)

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
		assert.Equal(t, []hashing.HashableString{"a"}, entries, "the rejected add left the set unchanged")

		require.NoError(t, access.Close())
	})

	t.Run("upgrade hands out a writable view", func(t *testing.T) {
		t.Parallel()

		acquirable, err := NewAcquirable[hashing.HashableString](hashing.Sha256)
		require.NoError(t, err)

		reader, err := acquirable.AcquireRead()
		require.NoError(t, err)

		writer, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		require.NoError(t, writer.View().Add("x"))

		require.ErrorIs(t, reader.View().Add("y"), errors.ErrReadOnlyView,
			"the earlier read view stays read-only during the upgrade")

		contains, err := reader.View().Contains("x")
		require.NoError(t, err)
		assert.True(t, contains)

		require.NoError(t, writer.Close())
		require.NoError(t, reader.Close())
	})
}

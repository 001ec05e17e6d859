package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/hashing"
)

func newTestAcquirable(t *testing.T, initial ...KeyValuePair[hashing.HashableString, string]) *Acquirable[hashing.HashableString, string] {
	t.Helper()

	acquirable, err := NewAcquirable[hashing.HashableString, string](hashing.Sha256, initial...)
	require.NoError(t, err)

	return acquirable
}

func TestAcquirable(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t)

		writer, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		require.NoError(t, writer.View().Add("k", "v"))
		require.NoError(t, writer.Close())

		reader, err := acquirable.AcquireRead()
		require.NoError(t, err)

		value, found, err := reader.View().Get("k")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "v", value)

		require.NoError(t, reader.Close())
	})

	t.Run("read view rejects mutation", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t)

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		require.ErrorIs(t, access.View().Add("k", "v"), errors.ErrReadOnlyView)
	})

	// A stored iterator fails once the acquisition closes.
	t.Run("iterator dies with its acquisition", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t,
			KeyValuePair[hashing.HashableString, string]{Key: "k", Value: "v"})

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		it := access.View().EntryIterator()

		require.NoError(t, access.Close())

		assert.False(t, it.Next())
		require.ErrorIs(t, it.Err(), errors.ErrAlreadyUnlocked)
	})

	// A held entry fails once the acquisition closes, even though the entry
	// was emitted while the acquisition was live.
	t.Run("entry dies with its acquisition", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t,
			KeyValuePair[hashing.HashableString, string]{Key: "k", Value: "v"})

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		entries, err := access.View().EntrySet().Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)

		entry := entries[0]

		key, err := entry.Key()
		require.NoError(t, err)
		assert.Equal(t, hashing.HashableString("k"), key)

		require.NoError(t, access.Close())

		_, err = entry.Key()
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)

		_, err = entry.Value()
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)
	})

	t.Run("entry set iterator emits guarded entries", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t,
			KeyValuePair[hashing.HashableString, string]{Key: "k", Value: "v"})

		access, err := acquirable.AcquireRead()
		require.NoError(t, err)

		it := access.View().EntrySet().Iterator()
		require.True(t, it.Next())

		entry := it.Value()

		value, err := entry.Value()
		require.NoError(t, err)
		assert.Equal(t, "v", value)

		// The read projection is preserved through the wrapping chain.
		require.ErrorIs(t, entry.SetValue("w"), errors.ErrReadOnlyView)

		require.NoError(t, access.Close())

		_, err = entry.Value()
		require.ErrorIs(t, err, errors.ErrAlreadyUnlocked)
	})

	t.Run("write view entries write through", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t,
			KeyValuePair[hashing.HashableString, string]{Key: "k", Value: "v"})

		access, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		entries, err := access.View().Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)

		require.NoError(t, entries[0].SetValue("w"))

		value, found, err := access.View().Get("k")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "w", value)
	})

	t.Run("view is pinned to the owner goroutine", func(t *testing.T) {
		t.Parallel()

		acquirable := newTestAcquirable(t)

		access, err := acquirable.AcquireWrite()
		require.NoError(t, err)

		defer func() { require.NoError(t, access.Close()) }()

		done := make(chan error, 1)

		go func() {
			done <- access.View().Add("k", "v")
		}()

		require.ErrorIs(t, <-done, errors.ErrNotOwner)
	})
}

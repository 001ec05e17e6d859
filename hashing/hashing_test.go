package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFuncs(t *testing.T) {
	t.Parallel()

	funcs := map[string]HashFunc{
		"sha256":   Sha256,
		"xxhash64": XxHash64,
		"xxh3":     Xxh3,
	}

	for name, hashFunc := range funcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := hashFunc(HashableString("hello"))
			require.NoError(t, err)
			assert.NotEmpty(t, first)

			second, err := hashFunc(HashableString("hello"))
			require.NoError(t, err)
			assert.Equal(t, first, second, "hashing is deterministic")

			different, err := hashFunc(HashableString("world"))
			require.NoError(t, err)
			assert.NotEqual(t, first, different)
		})
	}
}

func TestHashableTypes(t *testing.T) {
	t.Parallel()

	hashables := []Hashable{
		HashableString("s"),
		HashableBytes([]byte{1, 2}),
		HashableInt(1),
		HashableInt8(1),
		HashableInt16(1),
		HashableInt32(1),
		HashableInt64(1),
		HashableFloat32(1.5),
		HashableFloat64(1.5),
		HashableBool(true),
	}

	for _, hashable := range hashables {
		hash, err := Sha256(hashable)
		require.NoError(t, err)
		assert.Len(t, hash, 64, "sha256 hex digest")
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, HashableString("a").Equals("a"))
	assert.False(t, HashableString("a").Equals("b"))
	assert.True(t, HashableInt(3).Equals(3))
	assert.True(t, HashableBool(false).Equals(false))
	assert.True(t, HashableBytes([]byte{1}).Equals([]byte{1}))
	assert.False(t, HashableBytes([]byte{1}).Equals([]byte{2}))
}

package maps

import (
	"hash"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/hashing"
)

// Key is a generic wrapper type that adapts any comparable type to be used
// as a map key. It implements the collectable.Collectable interface, making
// comparable types compatible with the Map interface that requires hashable
// and comparable keys.
//
// This bridges Go's built-in comparable constraint and the
// collectable.Collectable interface, so standard Go types (int, string,
// etc.) can key hash-based maps without hand-writing a Collectable.
//
// Example:
//
//	m := NewHashMap[Key[string], int](hashing.Sha256)
//	m.Add(Key[string]{Key: "count"}, 42)
type Key[T comparable] struct {
	Key T
}

// UpdateHash writes the key's hash representation to the provided hash.Hash.
// It converts the comparable key to a collectable.Collectable and delegates
// hashing to it.
func (m Key[T]) UpdateHash(h hash.Hash) error {
	return collectable.FromComparable(m.Key).UpdateHash(h)
}

// Equals compares this Key with another Key for equality.
// Two Keys are equal if their wrapped values are equal according to Go's == operator.
func (m Key[T]) Equals(other Key[T]) bool {
	return m.Key == other.Key
}

// FromGoMap converts a standard Go map to a Map implementation. It creates
// a new hash map and populates it with all key-value pairs from the input
// map. Returns nil if the input map is nil, and an error if adding a pair
// fails (for example on a hash collision).
//
// The resulting map makes a convenient initial container for a map
// acquirable:
//
//	m, err := FromGoMap(map[string]int{"a": 1}, hashing.Sha256)
//	acquirable := NewAcquirableFor(m)
func FromGoMap[K comparable, V any](goMap map[K]V, hash hashing.HashFunc) (Map[Key[K], V], error) {
	if goMap == nil {
		return nil, nil
	}

	out := NewHashMap[Key[K], V](hash)

	for key, value := range goMap {
		if err := out.Add(Key[K]{Key: key}, value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ToGoMap converts a Map keyed by Key wrappers to a standard Go map.
// It extracts all key-value pairs from the Map and returns them in a native
// map[K]V. Returns nil if the input map is nil.
func ToGoMap[K comparable, V any](wrapped Map[Key[K], V]) map[K]V {
	if wrapped == nil {
		return nil
	}

	size, _ := wrapped.Size()
	out := make(map[K]V, size)

	for key, value := range wrapped.Seq() {
		out[key.Key] = value
	}

	return out
}

// Package maps provides the map contract, a hash-based default
// implementation, and the acquirable wrapper that guards a map behind the
// acquire lifecycle.
package maps

import (
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/optional"
)

// KeyValuePair is a generic key-value pair struct used to represent map
// entries in query results such as FindFirst.
type KeyValuePair[K collectable.Collectable[K], V any] struct {
	Key   K
	Value V
}

// Map is a generic hash map interface for storing key-value pairs where keys
// must be both hashable and comparable. Keys must implement the
// collectable.Collectable interface, which ensures they can be hashed for
// efficient lookup and compared for equality to resolve hash collisions.
//
// Every operation returns an error: implementations that cannot fail on a
// given operation return nil, while guarded views surface the acquisition
// check's failure and read-only projections reject mutators.
//
//nolint:interfacebloat // Map interface intentionally mirrors the full container surface
type Map[K collectable.Collectable[K], V any] interface {
	// Get retrieves the value for the given key. If the key exists, returns
	// the value with found=true; otherwise a zero value with found=false.
	// Returns ErrHashCollision if a different key with the same hash exists.
	Get(key K) (value V, found bool, err error)

	// GetOrElse retrieves the value for the given key, or returns
	// defaultValue if the key doesn't exist.
	GetOrElse(key K, defaultValue V) (V, error)

	// Add inserts or updates a key-value pair. If the key already exists,
	// its value is replaced. Returns ErrHashCollision if the hash function
	// produces a collision with a different key.
	Add(key K, value V) error

	// Remove deletes the key-value pair. If the key doesn't exist, this is
	// a no-op and returns nil.
	Remove(key K) error

	// Clear removes all key-value pairs from the map, leaving it empty.
	Clear() error

	// Contains checks if the given key exists in the map.
	Contains(key K) (bool, error)

	// Size returns the number of key-value pairs currently stored.
	Size() (int, error)

	// Seq returns an iterator for ranging over all key-value pairs. The
	// iteration order is non-deterministic. Seq cannot surface errors;
	// callers that need failures reported use EntryIterator instead.
	Seq() iter.Seq2[K, V]

	// Keys returns a snapshot slice of all keys. The order is not guaranteed.
	Keys() ([]K, error)

	// Values returns a snapshot slice of all values. The order is not guaranteed.
	Values() ([]V, error)

	// Entries returns all entries as a slice. Entries are live: reading one
	// reflects the map's current state, and SetValue writes through.
	Entries() ([]Entry[K, V], error)

	// EntryIterator returns a cursor over the entries.
	EntryIterator() iterator.Iterator[Entry[K, V]]

	// EntrySet returns a set-style view of the entries, sharing storage
	// with the map.
	EntrySet() EntrySet[K, V]

	// ForEach applies the given function to each key-value pair. The
	// iteration order is non-deterministic.
	ForEach(f func(key K, value V)) error

	// FindFirst searches for a key-value pair that satisfies the given
	// predicate. Returns Some(KeyValuePair) if a matching entry is found,
	// None otherwise. The iteration order is non-deterministic, so "first"
	// is not guaranteed to be consistent.
	FindFirst(predicate func(key K, value V) bool) (optional.Value[KeyValuePair[K, V]], error)
}

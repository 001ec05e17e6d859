package maps

import (
	"errors"
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/iterator"
)

// ErrDetachedEntry is returned when an entry is read after its key was
// removed from the map.
var ErrDetachedEntry = errors.New("entry no longer in map")

// Entry is a single key-value pair of a map. Entries are live views: Value
// reads the map's current state and SetValue writes through to the map.
// Entries produced by read-only projections reject SetValue, and entries
// produced by guarded views additionally run the acquisition check on every
// operation.
type Entry[K collectable.Collectable[K], V any] interface {
	// Key returns the entry's key.
	Key() (K, error)

	// Value returns the value currently mapped to the entry's key.
	// Returns ErrDetachedEntry if the key has been removed.
	Value() (V, error)

	// SetValue replaces the value mapped to the entry's key.
	SetValue(newValue V) error
}

// EntrySet is a set-style view over a map's entries, sharing storage with
// the map. Membership operations (Contains, Remove) work on the argument
// entry's key and delegate it unchanged; only emitted entries are wrapped
// by projections and guarded views.
type EntrySet[K collectable.Collectable[K], V any] interface {
	// Size returns the number of entries.
	Size() (int, error)

	// Contains reports whether an entry with the given entry's key exists.
	Contains(entry Entry[K, V]) (bool, error)

	// Remove removes the map entry with the given entry's key.
	Remove(entry Entry[K, V]) error

	// Entries returns all entries as a slice.
	Entries() ([]Entry[K, V], error)

	// Iterator returns a cursor over the entries.
	Iterator() iterator.Iterator[Entry[K, V]]

	// Seq ranges over the entries. Seq cannot surface errors; callers that
	// need failures reported use Iterator instead.
	Seq() iter.Seq[Entry[K, V]]
}

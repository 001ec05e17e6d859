// Package set provides the set contract, a hash-based default
// implementation, and the acquirable wrapper that guards a set behind the
// acquire lifecycle.
package set

import (
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/iterator"
)

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and
// Comparable interfaces. If a collision is detected, an error
// is returned.
//
// Every operation returns an error: implementations that cannot fail on a
// given operation return nil, while guarded views surface the acquisition
// check's failure and read-only projections reject mutators.
//
//nolint:interfacebloat // Set interface intentionally mirrors the full container surface
type Set[T collectable.Collectable[T]] interface {
	// AddAll adds multiple elements to the set. Returns an error if any element
	// causes a hash collision or if hashing fails.
	AddAll(elements ...T) error

	// Add adds a single element to the set. Returns an error if the element
	// causes a hash collision or if hashing fails. If the element already exists
	// in the set, no error is returned.
	Add(element T) error

	// Remove removes an element from the set. Returns an error if hashing fails.
	// If the element is not in the set, no error is returned.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear() error

	// Contains checks if an element exists in the set. Returns true if the element
	// exists, false otherwise. Returns an error if hashing fails or a collision is detected.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() (int, error)

	// Entries returns all elements in the set as a slice. The order is not guaranteed.
	Entries() ([]T, error)

	// Seq returns an iterator for ranging over the elements. The iteration
	// order is non-deterministic. Seq cannot surface errors; callers that
	// need failures reported use Iterator instead.
	Seq() iter.Seq[T]

	// Iterator returns a cursor over the elements. The iteration order is
	// non-deterministic.
	Iterator() iterator.Iterator[T]

	// Union returns a new independent set containing all elements from both
	// sets. Returns an error if any element causes a hash collision or if
	// hashing fails.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new independent set containing only elements
	// present in both sets. Returns an error if any element causes a hash
	// collision or if hashing fails.
	Intersection(other Set[T]) (Set[T], error)
}

// Package list provides the ordered-sequence contract, a slice-backed
// default implementation, and the acquirable wrapper that guards a list
// behind the acquire lifecycle.
package list

import (
	"iter"

	"github.com/amp-labs/amp-acquire/iterator"
)

// List is an ordered sequence of elements addressed by index.
//
// Every operation returns an error: implementations that cannot fail on a
// given operation return nil, while guarded views surface the acquisition
// check's failure and read-only projections reject mutators.
//
// SubList and Reversed return element views sharing storage with the list:
// Get and SetAt read and write through, while structural mutation (Add,
// Insert, RemoveAt, Clear) through a view is rejected and must go through
// the backing list.
//
//nolint:interfacebloat // List interface intentionally mirrors the full container surface
type List[T any] interface {
	// Add appends an element to the end of the list.
	Add(element T) error

	// AddAll appends multiple elements to the end of the list.
	AddAll(elements ...T) error

	// Insert places an element at the given index, shifting later elements
	// right. Returns ErrIndexOutOfRange unless 0 <= index <= size.
	Insert(index int, element T) error

	// Get returns the element at the given index.
	// Returns ErrIndexOutOfRange unless 0 <= index < size.
	Get(index int) (T, error)

	// SetAt replaces the element at the given index.
	// Returns ErrIndexOutOfRange unless 0 <= index < size.
	SetAt(index int, element T) error

	// RemoveAt removes and returns the element at the given index, shifting
	// later elements left. Returns ErrIndexOutOfRange unless 0 <= index < size.
	RemoveAt(index int) (T, error)

	// IndexOf returns the index of the first element equal to the given
	// one, or -1 if absent.
	IndexOf(element T) (int, error)

	// Contains reports whether an element equal to the given one exists.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the list.
	Size() (int, error)

	// Clear removes all elements from the list.
	Clear() error

	// Entries returns a snapshot slice of the elements in order.
	Entries() ([]T, error)

	// Seq returns an iterator for ranging over index-element pairs in
	// order. Seq cannot surface errors; callers that need failures reported
	// use Iterator instead.
	Seq() iter.Seq2[int, T]

	// Iterator returns a cursor over the elements in order.
	Iterator() iterator.Iterator[T]

	// SubList returns an element view of the half-open range [from, to).
	SubList(from, to int) (List[T], error)

	// Reversed returns an element view of the list in reverse order.
	Reversed() List[T]
}

package maps

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/optional"
)

// readOnlyMap is a projection over another map that rejects mutators. It
// shares storage with the wrapped map: changes made through the mutable map
// are immediately visible through the projection. Entries emitted by the
// projection reject SetValue.
type readOnlyMap[K collectable.Collectable[K], V any] struct {
	inner Map[K, V]
}

// ReadOnly wraps a map in a read-only projection. Mutating operations fail
// with ErrReadOnlyView; reads delegate to the wrapped map. The projection
// aliases the wrapped map's storage rather than copying it.
func ReadOnly[K collectable.Collectable[K], V any](inner Map[K, V]) Map[K, V] {
	if ro, ok := inner.(*readOnlyMap[K, V]); ok {
		return ro
	}

	return &readOnlyMap[K, V]{inner: inner}
}

func (r *readOnlyMap[K, V]) Get(key K) (V, bool, error) {
	return r.inner.Get(key)
}

func (r *readOnlyMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	return r.inner.GetOrElse(key, defaultValue)
}

func (r *readOnlyMap[K, V]) Add(K, V) error {
	return fmt.Errorf("%w: map add", errors.ErrReadOnlyView)
}

func (r *readOnlyMap[K, V]) Remove(K) error {
	return fmt.Errorf("%w: map remove", errors.ErrReadOnlyView)
}

func (r *readOnlyMap[K, V]) Clear() error {
	return fmt.Errorf("%w: map clear", errors.ErrReadOnlyView)
}

func (r *readOnlyMap[K, V]) Contains(key K) (bool, error) {
	return r.inner.Contains(key)
}

func (r *readOnlyMap[K, V]) Size() (int, error) {
	return r.inner.Size()
}

func (r *readOnlyMap[K, V]) Seq() iter.Seq2[K, V] {
	return r.inner.Seq()
}

func (r *readOnlyMap[K, V]) Keys() ([]K, error) {
	return r.inner.Keys()
}

func (r *readOnlyMap[K, V]) Values() ([]V, error) {
	return r.inner.Values()
}

func (r *readOnlyMap[K, V]) Entries() ([]Entry[K, V], error) {
	entries, err := r.inner.Entries()
	if err != nil {
		return nil, err
	}

	return wrapEntries(entries, readOnlyEntryOf[K, V]), nil
}

func (r *readOnlyMap[K, V]) EntryIterator() iterator.Iterator[Entry[K, V]] {
	return iterator.Map(r.inner.EntryIterator(), readOnlyEntryOf[K, V])
}

func (r *readOnlyMap[K, V]) EntrySet() EntrySet[K, V] {
	return &readOnlyEntrySet[K, V]{inner: r.inner.EntrySet()}
}

func (r *readOnlyMap[K, V]) ForEach(f func(key K, value V)) error {
	return r.inner.ForEach(f)
}

func (r *readOnlyMap[K, V]) FindFirst(predicate func(key K, value V) bool) (optional.Value[KeyValuePair[K, V]], error) {
	return r.inner.FindFirst(predicate)
}

// wrapEntries applies an entry wrapper to every element of a slice.
func wrapEntries[K collectable.Collectable[K], V any](
	entries []Entry[K, V], wrap func(Entry[K, V]) Entry[K, V],
) []Entry[K, V] {
	wrapped := make([]Entry[K, V], len(entries))
	for i, entry := range entries {
		wrapped[i] = wrap(entry)
	}

	return wrapped
}

// readOnlyEntry rejects SetValue and delegates reads.
type readOnlyEntry[K collectable.Collectable[K], V any] struct {
	inner Entry[K, V]
}

func readOnlyEntryOf[K collectable.Collectable[K], V any](inner Entry[K, V]) Entry[K, V] {
	return &readOnlyEntry[K, V]{inner: inner}
}

func (e *readOnlyEntry[K, V]) Key() (K, error) {
	return e.inner.Key()
}

func (e *readOnlyEntry[K, V]) Value() (V, error) {
	return e.inner.Value()
}

func (e *readOnlyEntry[K, V]) SetValue(V) error {
	return fmt.Errorf("%w: entry set", errors.ErrReadOnlyView)
}

// readOnlyEntrySet rejects Remove and wraps emitted entries.
type readOnlyEntrySet[K collectable.Collectable[K], V any] struct {
	inner EntrySet[K, V]
}

func (s *readOnlyEntrySet[K, V]) Size() (int, error) {
	return s.inner.Size()
}

func (s *readOnlyEntrySet[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	return s.inner.Contains(entry)
}

func (s *readOnlyEntrySet[K, V]) Remove(Entry[K, V]) error {
	return fmt.Errorf("%w: entry set remove", errors.ErrReadOnlyView)
}

func (s *readOnlyEntrySet[K, V]) Entries() ([]Entry[K, V], error) {
	entries, err := s.inner.Entries()
	if err != nil {
		return nil, err
	}

	return wrapEntries(entries, readOnlyEntryOf[K, V]), nil
}

func (s *readOnlyEntrySet[K, V]) Iterator() iterator.Iterator[Entry[K, V]] {
	return iterator.Map(s.inner.Iterator(), readOnlyEntryOf[K, V])
}

func (s *readOnlyEntrySet[K, V]) Seq() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for entry := range s.inner.Seq() {
			if !yield(readOnlyEntryOf(entry)) {
				return
			}
		}
	}
}

package maps

import (
	"iter"

	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/optional"
	"github.com/amp-labs/amp-acquire/zero"
)

// guardedMap forwards every operation to the wrapped map after running the
// bound acquisition's permitted-and-locked check. Emitted entries, entry
// iterators and the entry set are themselves guarded and bound to the same
// acquisition, so a held entry or iterator goes dead the moment the
// acquisition closes.
type guardedMap[K collectable.Collectable[K], V any] struct {
	acq   acquire.Acquisition
	inner Map[K, V]
}

// NewGuarded wraps a map in a view bound to the given acquisition. Every
// operation on the view checks the acquisition before delegating.
func NewGuarded[K collectable.Collectable[K], V any](acq acquire.Acquisition, inner Map[K, V]) Map[K, V] {
	return &guardedMap[K, V]{acq: acq, inner: inner}
}

func (g *guardedMap[K, V]) Get(key K) (V, bool, error) {
	if err := g.acq.Check(); err != nil {
		return zero.Value[V](), false, err
	}

	return g.inner.Get(key)
}

func (g *guardedMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	if err := g.acq.Check(); err != nil {
		return zero.Value[V](), err
	}

	return g.inner.GetOrElse(key, defaultValue)
}

func (g *guardedMap[K, V]) Add(key K, value V) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Add(key, value)
}

func (g *guardedMap[K, V]) Remove(key K) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Remove(key)
}

func (g *guardedMap[K, V]) Clear() error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Clear()
}

func (g *guardedMap[K, V]) Contains(key K) (bool, error) {
	if err := g.acq.Check(); err != nil {
		return false, err
	}

	return g.inner.Contains(key)
}

func (g *guardedMap[K, V]) Size() (int, error) {
	if err := g.acq.Check(); err != nil {
		return 0, err
	}

	return g.inner.Size()
}

// Seq ranges over the pairs while the acquisition stays valid; iteration
// stops silently once the check fails. Use EntryIterator when the failure
// must be observable.
func (g *guardedMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if g.acq.Check() != nil {
			return
		}

		for key, value := range g.inner.Seq() {
			if g.acq.Check() != nil {
				return
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

func (g *guardedMap[K, V]) Keys() ([]K, error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	return g.inner.Keys()
}

func (g *guardedMap[K, V]) Values() ([]V, error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	return g.inner.Values()
}

func (g *guardedMap[K, V]) Entries() ([]Entry[K, V], error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	entries, err := g.inner.Entries()
	if err != nil {
		return nil, err
	}

	return wrapEntries(entries, g.guardEntry), nil
}

func (g *guardedMap[K, V]) EntryIterator() iterator.Iterator[Entry[K, V]] {
	return iterator.Guarded(g.acq, iterator.Map(g.inner.EntryIterator(), g.guardEntry))
}

func (g *guardedMap[K, V]) EntrySet() EntrySet[K, V] {
	return &guardedEntrySet[K, V]{acq: g.acq, inner: g.inner.EntrySet()}
}

func (g *guardedMap[K, V]) ForEach(f func(key K, value V)) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.ForEach(f)
}

func (g *guardedMap[K, V]) FindFirst(predicate func(key K, value V) bool) (optional.Value[KeyValuePair[K, V]], error) {
	if err := g.acq.Check(); err != nil {
		return optional.None[KeyValuePair[K, V]](), err
	}

	return g.inner.FindFirst(predicate)
}

func (g *guardedMap[K, V]) guardEntry(inner Entry[K, V]) Entry[K, V] {
	return &guardedEntry[K, V]{acq: g.acq, inner: inner}
}

// guardedEntry checks the acquisition before every entry operation.
type guardedEntry[K collectable.Collectable[K], V any] struct {
	acq   acquire.Acquisition
	inner Entry[K, V]
}

func (e *guardedEntry[K, V]) Key() (K, error) {
	if err := e.acq.Check(); err != nil {
		return zero.Value[K](), err
	}

	return e.inner.Key()
}

func (e *guardedEntry[K, V]) Value() (V, error) {
	if err := e.acq.Check(); err != nil {
		return zero.Value[V](), err
	}

	return e.inner.Value()
}

func (e *guardedEntry[K, V]) SetValue(newValue V) error {
	if err := e.acq.Check(); err != nil {
		return err
	}

	return e.inner.SetValue(newValue)
}

// guardedEntrySet is the guarded pre-wrap over a map's entry set: emitted
// entries are wrapped on every emission path (slice conversion, cursor and
// Seq), while membership operations delegate the argument unchanged.
type guardedEntrySet[K collectable.Collectable[K], V any] struct {
	acq   acquire.Acquisition
	inner EntrySet[K, V]
}

func (s *guardedEntrySet[K, V]) Size() (int, error) {
	if err := s.acq.Check(); err != nil {
		return 0, err
	}

	return s.inner.Size()
}

func (s *guardedEntrySet[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	if err := s.acq.Check(); err != nil {
		return false, err
	}

	return s.inner.Contains(entry)
}

func (s *guardedEntrySet[K, V]) Remove(entry Entry[K, V]) error {
	if err := s.acq.Check(); err != nil {
		return err
	}

	return s.inner.Remove(entry)
}

func (s *guardedEntrySet[K, V]) Entries() ([]Entry[K, V], error) {
	if err := s.acq.Check(); err != nil {
		return nil, err
	}

	entries, err := s.inner.Entries()
	if err != nil {
		return nil, err
	}

	return wrapEntries(entries, func(inner Entry[K, V]) Entry[K, V] {
		return &guardedEntry[K, V]{acq: s.acq, inner: inner}
	}), nil
}

func (s *guardedEntrySet[K, V]) Iterator() iterator.Iterator[Entry[K, V]] {
	wrapped := iterator.Map(s.inner.Iterator(), func(inner Entry[K, V]) Entry[K, V] {
		return &guardedEntry[K, V]{acq: s.acq, inner: inner}
	})

	return iterator.Guarded(s.acq, wrapped)
}

func (s *guardedEntrySet[K, V]) Seq() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		if s.acq.Check() != nil {
			return
		}

		for entry := range s.inner.Seq() {
			if s.acq.Check() != nil {
				return
			}

			if !yield(&guardedEntry[K, V]{acq: s.acq, inner: entry}) {
				return
			}
		}
	}
}

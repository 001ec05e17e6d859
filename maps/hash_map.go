package maps

import (
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/compare"
	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/hashing"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/optional"
	"github.com/amp-labs/amp-acquire/zero"
)

type pair[K collectable.Collectable[K], V any] struct {
	key   K
	value V
}

// hashMap is the default Map implementation, backed by a Go map keyed by the
// keys' hash strings.
type hashMap[K collectable.Collectable[K], V any] struct {
	hash  hashing.HashFunc
	pairs map[string]*pair[K, V]
}

// NewHashMap creates a new Map with the provided hash function.
// The hash function is used to determine uniqueness of keys.
func NewHashMap[K collectable.Collectable[K], V any](hash hashing.HashFunc) Map[K, V] {
	return &hashMap[K, V]{
		hash:  hash,
		pairs: make(map[string]*pair[K, V]),
	}
}

// lookup finds the pair for key, verifying hash and equality agree.
func (m *hashMap[K, V]) lookup(key K) (*pair[K, V], bool, error) {
	hashVal, err := m.hash(key)
	if err != nil {
		return nil, false, err
	}

	prev, ok := m.pairs[hashVal]
	if !ok {
		return nil, false, nil
	}

	if !compare.Equals(prev.key, key) {
		return nil, false, errors.ErrHashCollision
	}

	return prev, true, nil
}

func (m *hashMap[K, V]) Get(key K) (V, bool, error) {
	entry, found, err := m.lookup(key)
	if err != nil || !found {
		return zero.Value[V](), false, err
	}

	return entry.value, true, nil
}

func (m *hashMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	value, found, err := m.Get(key)
	if err != nil {
		return zero.Value[V](), err
	}

	if !found {
		return defaultValue, nil
	}

	return value, nil
}

func (m *hashMap[K, V]) Add(key K, value V) error {
	hashVal, err := m.hash(key)
	if err != nil {
		return err
	}

	prev, ok := m.pairs[hashVal]
	if ok {
		if !compare.Equals(prev.key, key) {
			return errors.ErrHashCollision
		}

		prev.value = value

		return nil
	}

	m.pairs[hashVal] = &pair[K, V]{key: key, value: value}

	return nil
}

func (m *hashMap[K, V]) Remove(key K) error {
	hashVal, err := m.hash(key)
	if err != nil {
		return err
	}

	prev, ok := m.pairs[hashVal]
	if ok && compare.Equals(prev.key, key) {
		delete(m.pairs, hashVal)
	}

	return nil
}

func (m *hashMap[K, V]) Clear() error {
	m.pairs = make(map[string]*pair[K, V])

	return nil
}

func (m *hashMap[K, V]) Contains(key K) (bool, error) {
	_, found, err := m.lookup(key)

	return found, err
}

func (m *hashMap[K, V]) Size() (int, error) {
	return len(m.pairs), nil
}

func (m *hashMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, entry := range m.pairs {
			if !yield(entry.key, entry.value) {
				return
			}
		}
	}
}

func (m *hashMap[K, V]) Keys() ([]K, error) {
	keys := make([]K, 0, len(m.pairs))
	for _, entry := range m.pairs {
		keys = append(keys, entry.key)
	}

	return keys, nil
}

func (m *hashMap[K, V]) Values() ([]V, error) {
	values := make([]V, 0, len(m.pairs))
	for _, entry := range m.pairs {
		values = append(values, entry.value)
	}

	return values, nil
}

func (m *hashMap[K, V]) Entries() ([]Entry[K, V], error) {
	entries := make([]Entry[K, V], 0, len(m.pairs))
	for _, p := range m.pairs {
		entries = append(entries, &mapEntry[K, V]{owner: m, key: p.key})
	}

	return entries, nil
}

func (m *hashMap[K, V]) EntryIterator() iterator.Iterator[Entry[K, V]] {
	entries, _ := m.Entries()

	return iterator.FromSlice(entries)
}

func (m *hashMap[K, V]) EntrySet() EntrySet[K, V] {
	return &mapEntrySet[K, V]{owner: m}
}

func (m *hashMap[K, V]) ForEach(f func(key K, value V)) error {
	for _, entry := range m.pairs {
		f(entry.key, entry.value)
	}

	return nil
}

func (m *hashMap[K, V]) FindFirst(predicate func(key K, value V) bool) (optional.Value[KeyValuePair[K, V]], error) {
	for _, entry := range m.pairs {
		if predicate(entry.key, entry.value) {
			return optional.Some(KeyValuePair[K, V]{Key: entry.key, Value: entry.value}), nil
		}
	}

	return optional.None[KeyValuePair[K, V]](), nil
}

// mapEntry is a live entry over a hashMap, addressed by key.
type mapEntry[K collectable.Collectable[K], V any] struct {
	owner *hashMap[K, V]
	key   K
}

func (e *mapEntry[K, V]) Key() (K, error) {
	return e.key, nil
}

func (e *mapEntry[K, V]) Value() (V, error) {
	value, found, err := e.owner.Get(e.key)
	if err != nil {
		return zero.Value[V](), err
	}

	if !found {
		return zero.Value[V](), ErrDetachedEntry
	}

	return value, nil
}

func (e *mapEntry[K, V]) SetValue(newValue V) error {
	return e.owner.Add(e.key, newValue)
}

// mapEntrySet is the hashMap's own entry-set view.
type mapEntrySet[K collectable.Collectable[K], V any] struct {
	owner *hashMap[K, V]
}

func (s *mapEntrySet[K, V]) Size() (int, error) {
	return s.owner.Size()
}

func (s *mapEntrySet[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	key, err := entry.Key()
	if err != nil {
		return false, err
	}

	return s.owner.Contains(key)
}

func (s *mapEntrySet[K, V]) Remove(entry Entry[K, V]) error {
	key, err := entry.Key()
	if err != nil {
		return err
	}

	return s.owner.Remove(key)
}

func (s *mapEntrySet[K, V]) Entries() ([]Entry[K, V], error) {
	return s.owner.Entries()
}

func (s *mapEntrySet[K, V]) Iterator() iterator.Iterator[Entry[K, V]] {
	return s.owner.EntryIterator()
}

func (s *mapEntrySet[K, V]) Seq() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, p := range s.owner.pairs {
			if !yield(&mapEntry[K, V]{owner: s.owner, key: p.key}) {
				return
			}
		}
	}
}

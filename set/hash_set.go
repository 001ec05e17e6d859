package set

import (
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/compare"
	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/hashing"
	"github.com/amp-labs/amp-acquire/iterator"
)

// hashSet is the default Set implementation, backed by a Go map keyed by the
// elements' hash strings.
type hashSet[T collectable.Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewHashSet creates a new Set with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewHashSet[T collectable.Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &hashSet[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

func (s *hashSet[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *hashSet[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return errors.ErrHashCollision
	}

	s.elements[hashVal] = element

	return nil
}

func (s *hashSet[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

func (s *hashSet[T]) Clear() error {
	s.elements = make(map[string]T)

	return nil
}

func (s *hashSet[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return true, nil
		}

		return true, errors.ErrHashCollision
	}

	return false, nil
}

func (s *hashSet[T]) Size() (int, error) {
	return len(s.elements), nil
}

func (s *hashSet[T]) Entries() ([]T, error) {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items, nil
}

func (s *hashSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.elements {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *hashSet[T]) Iterator() iterator.Iterator[T] {
	items, _ := s.Entries()

	return iterator.FromSlice(items)
}

func (s *hashSet[T]) Union(other Set[T]) (Set[T], error) {
	union := NewHashSet[T](s.hash)

	myItems, err := s.Entries()
	if err != nil {
		return nil, err
	}

	otherItems, err := other.Entries()
	if err != nil {
		return nil, err
	}

	if err := union.AddAll(myItems...); err != nil {
		return nil, err
	}

	if err := union.AddAll(otherItems...); err != nil {
		return nil, err
	}

	return union, nil
}

func (s *hashSet[T]) Intersection(other Set[T]) (Set[T], error) {
	intersection := NewHashSet[T](s.hash)

	items, err := s.Entries()
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := intersection.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return intersection, nil
}

package set

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/iterator"
)

// readOnlySet is a projection over another set that rejects mutators. It
// shares storage with the wrapped set: changes made through the mutable set
// are immediately visible through the projection.
type readOnlySet[T collectable.Collectable[T]] struct {
	inner Set[T]
}

// ReadOnly wraps a set in a read-only projection. Mutating operations fail
// with ErrReadOnlyView; reads delegate to the wrapped set. The projection
// aliases the wrapped set's storage rather than copying it.
func ReadOnly[T collectable.Collectable[T]](inner Set[T]) Set[T] {
	if ro, ok := inner.(*readOnlySet[T]); ok {
		return ro
	}

	return &readOnlySet[T]{inner: inner}
}

func (r *readOnlySet[T]) AddAll(...T) error {
	return fmt.Errorf("%w: set add", errors.ErrReadOnlyView)
}

func (r *readOnlySet[T]) Add(T) error {
	return fmt.Errorf("%w: set add", errors.ErrReadOnlyView)
}

func (r *readOnlySet[T]) Remove(T) error {
	return fmt.Errorf("%w: set remove", errors.ErrReadOnlyView)
}

func (r *readOnlySet[T]) Clear() error {
	return fmt.Errorf("%w: set clear", errors.ErrReadOnlyView)
}

func (r *readOnlySet[T]) Contains(element T) (bool, error) {
	return r.inner.Contains(element)
}

func (r *readOnlySet[T]) Size() (int, error) {
	return r.inner.Size()
}

func (r *readOnlySet[T]) Entries() ([]T, error) {
	return r.inner.Entries()
}

func (r *readOnlySet[T]) Seq() iter.Seq[T] {
	return r.inner.Seq()
}

func (r *readOnlySet[T]) Iterator() iterator.Iterator[T] {
	return r.inner.Iterator()
}

func (r *readOnlySet[T]) Union(other Set[T]) (Set[T], error) {
	return r.inner.Union(other)
}

func (r *readOnlySet[T]) Intersection(other Set[T]) (Set[T], error) {
	return r.inner.Intersection(other)
}

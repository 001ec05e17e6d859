package list

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/zero"
)

// readOnlyList is a projection over another list that rejects mutators. It
// shares storage with the wrapped list: changes made through the mutable
// list are immediately visible through the projection.
type readOnlyList[T any] struct {
	inner List[T]
}

// ReadOnly wraps a list in a read-only projection. Mutating operations fail
// with ErrReadOnlyView; reads delegate to the wrapped list. The projection
// aliases the wrapped list's storage rather than copying it.
func ReadOnly[T any](inner List[T]) List[T] {
	if ro, ok := inner.(*readOnlyList[T]); ok {
		return ro
	}

	return &readOnlyList[T]{inner: inner}
}

func (r *readOnlyList[T]) reject(op string) error {
	return fmt.Errorf("%w: list %s", errors.ErrReadOnlyView, op)
}

func (r *readOnlyList[T]) Add(T) error {
	return r.reject("add")
}

func (r *readOnlyList[T]) AddAll(...T) error {
	return r.reject("add")
}

func (r *readOnlyList[T]) Insert(int, T) error {
	return r.reject("insert")
}

func (r *readOnlyList[T]) Get(index int) (T, error) {
	return r.inner.Get(index)
}

func (r *readOnlyList[T]) SetAt(int, T) error {
	return r.reject("set")
}

func (r *readOnlyList[T]) RemoveAt(int) (T, error) {
	return zero.Value[T](), r.reject("remove")
}

func (r *readOnlyList[T]) IndexOf(element T) (int, error) {
	return r.inner.IndexOf(element)
}

func (r *readOnlyList[T]) Contains(element T) (bool, error) {
	return r.inner.Contains(element)
}

func (r *readOnlyList[T]) Size() (int, error) {
	return r.inner.Size()
}

func (r *readOnlyList[T]) Clear() error {
	return r.reject("clear")
}

func (r *readOnlyList[T]) Entries() ([]T, error) {
	return r.inner.Entries()
}

func (r *readOnlyList[T]) Seq() iter.Seq2[int, T] {
	return r.inner.Seq()
}

func (r *readOnlyList[T]) Iterator() iterator.Iterator[T] {
	return r.inner.Iterator()
}

// SubList returns a read-only projection of the inner sub-list view.
func (r *readOnlyList[T]) SubList(from, to int) (List[T], error) {
	view, err := r.inner.SubList(from, to)
	if err != nil {
		return nil, err
	}

	return ReadOnly(view), nil
}

// Reversed returns a read-only projection of the inner reversed view.
func (r *readOnlyList[T]) Reversed() List[T] {
	return ReadOnly(r.inner.Reversed())
}

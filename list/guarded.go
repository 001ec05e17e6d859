package list

import (
	"iter"

	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/zero"
)

// guardedList forwards every operation to the wrapped list after running
// the bound acquisition's permitted-and-locked check. Sub-lists, reversed
// views and iterators are themselves guarded and bound to the same
// acquisition.
type guardedList[T any] struct {
	acq   acquire.Acquisition
	inner List[T]
}

// NewGuarded wraps a list in a view bound to the given acquisition. Every
// operation on the view checks the acquisition before delegating.
func NewGuarded[T any](acq acquire.Acquisition, inner List[T]) List[T] {
	return &guardedList[T]{acq: acq, inner: inner}
}

func (g *guardedList[T]) Add(element T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Add(element)
}

func (g *guardedList[T]) AddAll(elements ...T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.AddAll(elements...)
}

func (g *guardedList[T]) Insert(index int, element T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Insert(index, element)
}

func (g *guardedList[T]) Get(index int) (T, error) {
	if err := g.acq.Check(); err != nil {
		return zero.Value[T](), err
	}

	return g.inner.Get(index)
}

func (g *guardedList[T]) SetAt(index int, element T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.SetAt(index, element)
}

func (g *guardedList[T]) RemoveAt(index int) (T, error) {
	if err := g.acq.Check(); err != nil {
		return zero.Value[T](), err
	}

	return g.inner.RemoveAt(index)
}

func (g *guardedList[T]) IndexOf(element T) (int, error) {
	if err := g.acq.Check(); err != nil {
		return -1, err
	}

	return g.inner.IndexOf(element)
}

func (g *guardedList[T]) Contains(element T) (bool, error) {
	if err := g.acq.Check(); err != nil {
		return false, err
	}

	return g.inner.Contains(element)
}

func (g *guardedList[T]) Size() (int, error) {
	if err := g.acq.Check(); err != nil {
		return 0, err
	}

	return g.inner.Size()
}

func (g *guardedList[T]) Clear() error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Clear()
}

func (g *guardedList[T]) Entries() ([]T, error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	return g.inner.Entries()
}

// Seq ranges over the elements while the acquisition stays valid; iteration
// stops silently once the check fails. Use Iterator when the failure must
// be observable.
func (g *guardedList[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if g.acq.Check() != nil {
			return
		}

		for i, element := range g.inner.Seq() {
			if g.acq.Check() != nil {
				return
			}

			if !yield(i, element) {
				return
			}
		}
	}
}

func (g *guardedList[T]) Iterator() iterator.Iterator[T] {
	return iterator.Guarded(g.acq, g.inner.Iterator())
}

// SubList returns a guarded view of the inner sub-list, bound to the same
// acquisition.
func (g *guardedList[T]) SubList(from, to int) (List[T], error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	view, err := g.inner.SubList(from, to)
	if err != nil {
		return nil, err
	}

	return NewGuarded(g.acq, view), nil
}

// Reversed returns a guarded view of the inner reversed view, bound to the
// same acquisition.
func (g *guardedList[T]) Reversed() List[T] {
	return NewGuarded(g.acq, g.inner.Reversed())
}

package set

import (
	"iter"

	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/iterator"
)

// guardedSet forwards every operation to the wrapped set after running the
// bound acquisition's permitted-and-locked check. The view owns neither the
// set nor the acquisition; once the acquisition closes, every operation
// fails with ErrAlreadyUnlocked.
type guardedSet[T collectable.Collectable[T]] struct {
	acq   acquire.Acquisition
	inner Set[T]
}

// NewGuarded wraps a set in a view bound to the given acquisition. Every
// operation on the view checks the acquisition before delegating.
func NewGuarded[T collectable.Collectable[T]](acq acquire.Acquisition, inner Set[T]) Set[T] {
	return &guardedSet[T]{acq: acq, inner: inner}
}

func (g *guardedSet[T]) AddAll(elements ...T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.AddAll(elements...)
}

func (g *guardedSet[T]) Add(element T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Add(element)
}

func (g *guardedSet[T]) Remove(element T) error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Remove(element)
}

func (g *guardedSet[T]) Clear() error {
	if err := g.acq.Check(); err != nil {
		return err
	}

	return g.inner.Clear()
}

func (g *guardedSet[T]) Contains(element T) (bool, error) {
	if err := g.acq.Check(); err != nil {
		return false, err
	}

	return g.inner.Contains(element)
}

func (g *guardedSet[T]) Size() (int, error) {
	if err := g.acq.Check(); err != nil {
		return 0, err
	}

	return g.inner.Size()
}

func (g *guardedSet[T]) Entries() ([]T, error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	return g.inner.Entries()
}

// Seq ranges over the elements while the acquisition stays valid; iteration
// stops silently once the check fails. Use Iterator when the failure must be
// observable.
func (g *guardedSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if g.acq.Check() != nil {
			return
		}

		for item := range g.inner.Seq() {
			if g.acq.Check() != nil {
				return
			}

			if !yield(item) {
				return
			}
		}
	}
}

func (g *guardedSet[T]) Iterator() iterator.Iterator[T] {
	return iterator.Guarded(g.acq, g.inner.Iterator())
}

// Union returns a new independent set; the result is a snapshot-free copy
// and is not bound to the acquisition.
func (g *guardedSet[T]) Union(other Set[T]) (Set[T], error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	return g.inner.Union(other)
}

// Intersection returns a new independent set; the result is not bound to
// the acquisition.
func (g *guardedSet[T]) Intersection(other Set[T]) (Set[T], error) {
	if err := g.acq.Check(); err != nil {
		return nil, err
	}

	return g.inner.Intersection(other)
}

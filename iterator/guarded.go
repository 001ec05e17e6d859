package iterator

import (
	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/zero"
)

// guardedIterator runs the acquisition check before every advance, so a held
// iterator goes dead the moment its acquisition closes.
type guardedIterator[T any] struct {
	acq   acquire.Acquisition
	inner Iterator[T]
	err   error
}

// Guarded wraps an iterator so that every advance first verifies the given
// acquisition is still permitted and locked. Once the check fails, Next
// returns false and Err reports the check's failure.
func Guarded[T any](acq acquire.Acquisition, inner Iterator[T]) Iterator[T] {
	return &guardedIterator[T]{acq: acq, inner: inner}
}

func (g *guardedIterator[T]) Next() bool {
	if g.err != nil {
		return false
	}

	if err := g.acq.Check(); err != nil {
		g.err = err

		return false
	}

	return g.inner.Next()
}

func (g *guardedIterator[T]) Value() T {
	if g.err != nil {
		return zero.Value[T]()
	}

	return g.inner.Value()
}

func (g *guardedIterator[T]) Err() error {
	if g.err != nil {
		return g.err
	}

	return g.inner.Err()
}

// Package value provides acquirable cells: single protected values that must
// be acquired before reading or writing.
//
// A cell pairs one value with an acquirable lifecycle. Callers obtain an
// Access through AcquireRead or AcquireWrite and read or replace the value
// through it; every access re-verifies that the acquisition is still owned
// by the calling goroutine and has not been closed.
//
// The generic Cell works for any type. Ref and NonNilRef specialize it for
// reference values with and without a nil contract, and the per-primitive
// types (Int, Int64, Int16, Int8, Float32, Float64, Bool, Char) cover the
// primitive family.
package value

import (
	"fmt"

	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/zero"
)

// Cell is an acquirable holding a single value of type T.
type Cell[T any] struct {
	core     *acquire.Acquirable
	validate func(T) error
	value    T
}

// NewCell creates a cell, optionally with an initial value. With no initial
// value the cell starts at the zero value of T.
func NewCell[T any](initial ...T) *Cell[T] {
	cell := &Cell[T]{
		core: acquire.NewAcquirable(),
	}

	if len(initial) > 0 {
		cell.value = initial[0]
	}

	return cell
}

// AcquireRead acquires the cell for reading and returns an access bound to
// the acquisition. Set through a read access fails with
// ErrReadOnlyAcquisition, even while the underlying grant is upgraded.
func (c *Cell[T]) AcquireRead() (*Access[T], error) {
	acq, err := c.core.AcquireRead()
	if err != nil {
		return nil, err
	}

	return &Access[T]{Acquisition: acq, cell: c, mode: acq.Type()}, nil
}

// AcquireWrite acquires the cell for writing and returns an access bound to
// the acquisition. On a goroutine already holding a read acquisition, the
// grant is upgraded in place; see acquire.Acquirable.AcquireWrite.
func (c *Cell[T]) AcquireWrite() (*Access[T], error) {
	acq, err := c.core.AcquireWrite()
	if err != nil {
		return nil, err
	}

	return &Access[T]{Acquisition: acq, cell: c, mode: acq.Type()}, nil
}

// NewCondition returns a condition variable bound to the cell's write lock.
func (c *Cell[T]) NewCondition() *acquire.Condition {
	return c.core.NewCondition()
}

// ID returns the identity of the underlying acquirable.
func (c *Cell[T]) ID() string {
	return c.core.ID().String()
}

// Access is a scoped capability over one cell, bound to an acquisition. It
// embeds the acquisition, so Close, Check, Type and the rest of the
// Acquisition surface are available directly.
type Access[T any] struct {
	acquire.Acquisition

	cell *Cell[T]

	// mode is the access mode at mint time. A read access stays read-only
	// even if the root grant is later upgraded; the upgrade hands out its
	// own write access instead.
	mode acquire.Type
}

// Get returns the cell's current value. It fails with ErrNotOwner from a
// non-owner goroutine and ErrAlreadyUnlocked after close.
func (a *Access[T]) Get() (T, error) {
	if err := a.Check(); err != nil {
		return zero.Value[T](), err
	}

	return a.cell.value, nil
}

// Set stores a new value in the cell. It requires a write access: Set
// through a read access fails with ErrReadOnlyAcquisition. Cells with a
// value contract (for example NonNilRef) validate the new value first and
// leave the cell unchanged on rejection.
func (a *Access[T]) Set(newValue T) error {
	if err := a.Check(); err != nil {
		return err
	}

	if a.mode != acquire.Write {
		return fmt.Errorf("%w: cell %s", errors.ErrReadOnlyAcquisition, a.cell.ID())
	}

	if a.cell.validate != nil {
		if err := a.cell.validate(newValue); err != nil {
			return err
		}
	}

	a.cell.value = newValue

	return nil
}

// UnwrapAcquisition implements acquire.Wrapper, allowing an Access to be
// passed to Condition.Wait directly.
func (a *Access[T]) UnwrapAcquisition() acquire.Acquisition {
	return a.Acquisition
}

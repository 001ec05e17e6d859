package value

import (
	"fmt"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/optional"
)

// Ref is a nullable reference cell: it stores a pointer and accepts nil both
// at construction and through Set.
type Ref[T any] struct {
	*Cell[*T]
}

// NewRef creates a nullable reference cell, optionally with an initial
// pointer. With no initial value the cell starts at nil.
func NewRef[T any](initial ...*T) *Ref[T] {
	return &Ref[T]{Cell: NewCell[*T](initial...)}
}

// NonNilRef is a reference cell that rejects nil: construction and Set fail
// with ErrNilValue when given a nil pointer, leaving the cell unchanged.
type NonNilRef[T any] struct {
	*Cell[*T]
}

// NewNonNilRef creates a non-nil reference cell holding initial.
func NewNonNilRef[T any](initial *T) (*NonNilRef[T], error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: initial value of non-nil cell", errors.ErrNilValue)
	}

	cell := NewCell[*T](initial)
	cell.validate = func(candidate *T) error {
		if candidate == nil {
			return fmt.Errorf("%w: non-nil cell %s", errors.ErrNilValue, cell.ID())
		}

		return nil
	}

	return &NonNilRef[T]{Cell: cell}, nil
}

// Optional reads a reference access as an optional value: None for a nil
// pointer, Some of the pointed-to value otherwise.
func Optional[T any](access *Access[*T]) (optional.Value[T], error) {
	ptr, err := access.Get()
	if err != nil {
		return optional.None[T](), err
	}

	if ptr == nil {
		return optional.None[T](), nil
	}

	return optional.Some(*ptr), nil
}

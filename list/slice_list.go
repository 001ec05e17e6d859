package list

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-acquire/compare"
	acqerrors "github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/zero"
)

// ErrEqualityUndefined is returned by IndexOf and Contains when the list was
// created without an equality function.
var ErrEqualityUndefined = errors.New("list has no equality function")

// sliceList is the default List implementation, backed by a Go slice.
type sliceList[T any] struct {
	equals   compare.Func[T]
	elements []T
}

// NewSliceList creates a new List using the given equality function for
// IndexOf and Contains. A nil equality function is allowed; IndexOf and
// Contains then fail with ErrEqualityUndefined.
func NewSliceList[T any](equals compare.Func[T]) List[T] {
	return &sliceList[T]{equals: equals}
}

// NewComparable creates a new List of comparable elements using the == operator.
func NewComparable[T comparable]() List[T] {
	return NewSliceList(compare.ByOperator[T]())
}

func (l *sliceList[T]) boundsCheck(index, limit int) error {
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: index %d, size %d", acqerrors.ErrIndexOutOfRange, index, len(l.elements))
	}

	return nil
}

func (l *sliceList[T]) Add(element T) error {
	l.elements = append(l.elements, element)

	return nil
}

func (l *sliceList[T]) AddAll(elements ...T) error {
	l.elements = append(l.elements, elements...)

	return nil
}

func (l *sliceList[T]) Insert(index int, element T) error {
	if err := l.boundsCheck(index, len(l.elements)+1); err != nil {
		return err
	}

	l.elements = slices.Insert(l.elements, index, element)

	return nil
}

func (l *sliceList[T]) Get(index int) (T, error) {
	if err := l.boundsCheck(index, len(l.elements)); err != nil {
		return zero.Value[T](), err
	}

	return l.elements[index], nil
}

func (l *sliceList[T]) SetAt(index int, element T) error {
	if err := l.boundsCheck(index, len(l.elements)); err != nil {
		return err
	}

	l.elements[index] = element

	return nil
}

func (l *sliceList[T]) RemoveAt(index int) (T, error) {
	if err := l.boundsCheck(index, len(l.elements)); err != nil {
		return zero.Value[T](), err
	}

	removed := l.elements[index]
	l.elements = slices.Delete(l.elements, index, index+1)

	return removed, nil
}

func (l *sliceList[T]) IndexOf(element T) (int, error) {
	if l.equals == nil {
		return -1, ErrEqualityUndefined
	}

	for i, candidate := range l.elements {
		if l.equals(candidate, element) {
			return i, nil
		}
	}

	return -1, nil
}

func (l *sliceList[T]) Contains(element T) (bool, error) {
	index, err := l.IndexOf(element)
	if err != nil {
		return false, err
	}

	return index >= 0, nil
}

func (l *sliceList[T]) Size() (int, error) {
	return len(l.elements), nil
}

func (l *sliceList[T]) Clear() error {
	l.elements = nil

	return nil
}

func (l *sliceList[T]) Entries() ([]T, error) {
	return slices.Clone(l.elements), nil
}

func (l *sliceList[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, element := range l.elements {
			if !yield(i, element) {
				return
			}
		}
	}
}

func (l *sliceList[T]) Iterator() iterator.Iterator[T] {
	entries, _ := l.Entries()

	return iterator.FromSlice(entries)
}

func (l *sliceList[T]) SubList(from, to int) (List[T], error) {
	return newRangeView[T](l, from, to)
}

func (l *sliceList[T]) Reversed() List[T] {
	return newReversedView[T](l)
}

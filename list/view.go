package list

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-acquire/compare"
	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/iterator"
	"github.com/amp-labs/amp-acquire/zero"
)

// listView is an element view over a backing list: a sub-range, a reversed
// ordering, or both. Get and SetAt map indices onto the backing list and
// share its storage; structural mutation through the view is rejected.
type listView[T any] struct {
	parent List[T]
	equals compare.Func[T]

	// whole selects the full (current) range of the parent; from/to are
	// ignored and the view tracks the parent's size. Otherwise the view is
	// pinned to [from, to) as of creation.
	whole    bool
	from, to int
	reversed bool
}

// equalityOf recovers the equality function of the backing list.
func equalityOf[T any](parent List[T]) compare.Func[T] {
	switch backing := parent.(type) {
	case *sliceList[T]:
		return backing.equals
	case *listView[T]:
		return backing.equals
	default:
		return nil
	}
}

func newRangeView[T any](parent List[T], from, to int) (List[T], error) {
	size, err := parent.Size()
	if err != nil {
		return nil, err
	}

	if from < 0 || to < from || to > size {
		return nil, fmt.Errorf("%w: sub-list [%d, %d), size %d", errors.ErrIndexOutOfRange, from, to, size)
	}

	return &listView[T]{parent: parent, equals: equalityOf(parent), from: from, to: to}, nil
}

func newReversedView[T any](parent List[T]) List[T] {
	return &listView[T]{parent: parent, equals: equalityOf(parent), whole: true, reversed: true}
}

func (v *listView[T]) structural(op string) error {
	return fmt.Errorf("%w: %s through a list view", errors.ErrReadOnlyView, op)
}

// mapIndex translates a view index into a parent index.
func (v *listView[T]) mapIndex(index int) (int, error) {
	size, err := v.Size()
	if err != nil {
		return 0, err
	}

	if index < 0 || index >= size {
		return 0, fmt.Errorf("%w: index %d, size %d", errors.ErrIndexOutOfRange, index, size)
	}

	if v.reversed {
		index = size - 1 - index
	}

	if !v.whole {
		index += v.from
	}

	return index, nil
}

func (v *listView[T]) Add(T) error {
	return v.structural("add")
}

func (v *listView[T]) AddAll(...T) error {
	return v.structural("add")
}

func (v *listView[T]) Insert(int, T) error {
	return v.structural("insert")
}

func (v *listView[T]) Get(index int) (T, error) {
	parentIndex, err := v.mapIndex(index)
	if err != nil {
		return zero.Value[T](), err
	}

	return v.parent.Get(parentIndex)
}

func (v *listView[T]) SetAt(index int, element T) error {
	parentIndex, err := v.mapIndex(index)
	if err != nil {
		return err
	}

	return v.parent.SetAt(parentIndex, element)
}

func (v *listView[T]) RemoveAt(int) (T, error) {
	return zero.Value[T](), v.structural("remove")
}

func (v *listView[T]) IndexOf(element T) (int, error) {
	if v.equals == nil {
		return -1, ErrEqualityUndefined
	}

	size, err := v.Size()
	if err != nil {
		return -1, err
	}

	for i := range size {
		candidate, err := v.Get(i)
		if err != nil {
			return -1, err
		}

		if v.equals(candidate, element) {
			return i, nil
		}
	}

	return -1, nil
}

func (v *listView[T]) Contains(element T) (bool, error) {
	index, err := v.IndexOf(element)
	if err != nil {
		return false, err
	}

	return index >= 0, nil
}

func (v *listView[T]) Size() (int, error) {
	if v.whole {
		return v.parent.Size()
	}

	return v.to - v.from, nil
}

func (v *listView[T]) Clear() error {
	return v.structural("clear")
}

func (v *listView[T]) Entries() ([]T, error) {
	size, err := v.Size()
	if err != nil {
		return nil, err
	}

	entries := make([]T, 0, size)

	for i := range size {
		element, err := v.Get(i)
		if err != nil {
			return nil, err
		}

		entries = append(entries, element)
	}

	return entries, nil
}

func (v *listView[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		size, err := v.Size()
		if err != nil {
			return
		}

		for i := range size {
			element, err := v.Get(i)
			if err != nil {
				return
			}

			if !yield(i, element) {
				return
			}
		}
	}
}

func (v *listView[T]) Iterator() iterator.Iterator[T] {
	entries, err := v.Entries()
	if err != nil {
		return iterator.FromSlice[T](nil)
	}

	return iterator.FromSlice(entries)
}

func (v *listView[T]) SubList(from, to int) (List[T], error) {
	return newRangeView[T](v, from, to)
}

func (v *listView[T]) Reversed() List[T] {
	return newReversedView[T](v)
}

package set

import (
	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/hashing"
)

// Acquirable guards a set behind the acquire lifecycle. It owns a mutable
// set and a read-only projection of it; read acquisitions see the
// projection, write acquisitions see the mutable set, and both are wrapped
// in guarded views bound to the acquisition.
//
// The projection and the mutable set share storage: mutations made through
// a write acquisition are observable through any live read view held by the
// same goroutine.
type Acquirable[T collectable.Collectable[T]] struct {
	core     *acquire.Acquirable
	mutable  Set[T]
	readOnly Set[T]
}

// NewAcquirable creates a set acquirable backed by a hash set using the
// given hash function. Initial elements, if any, are copied in.
func NewAcquirable[T collectable.Collectable[T]](hash hashing.HashFunc, initial ...T) (*Acquirable[T], error) {
	container := NewHashSet[T](hash)

	if err := container.AddAll(initial...); err != nil {
		return nil, err
	}

	return NewAcquirableFor(container), nil
}

// NewAcquirableFor creates a set acquirable over an existing container. The
// acquirable takes ownership: the caller must not touch the container
// directly afterwards.
func NewAcquirableFor[T collectable.Collectable[T]](container Set[T]) *Acquirable[T] {
	return &Acquirable[T]{
		core:     acquire.NewAcquirable(),
		mutable:  container,
		readOnly: ReadOnly(container),
	}
}

// AcquireRead acquires the set for reading. The returned access exposes a
// guarded view of the read-only projection.
func (a *Acquirable[T]) AcquireRead() (*Access[T], error) {
	acq, err := a.core.AcquireRead()
	if err != nil {
		return nil, err
	}

	return &Access[T]{
		Acquisition: acq,
		view:        NewGuarded(acq, a.readOnly),
	}, nil
}

// AcquireWrite acquires the set for writing. The returned access exposes a
// guarded view of the mutable set. On a goroutine already holding a read
// acquisition the grant is upgraded in place, and the fresh access is the
// writable surface for the upgrade's scope; the earlier read view stays
// read-only.
func (a *Acquirable[T]) AcquireWrite() (*Access[T], error) {
	acq, err := a.core.AcquireWrite()
	if err != nil {
		return nil, err
	}

	return &Access[T]{
		Acquisition: acq,
		view:        NewGuarded(acq, a.mutable),
	}, nil
}

// NewCondition returns a condition variable bound to the set's write lock.
func (a *Acquirable[T]) NewCondition() *acquire.Condition {
	return a.core.NewCondition()
}

// ID returns the identity of the underlying acquirable.
func (a *Acquirable[T]) ID() string {
	return a.core.ID().String()
}

// Access is a scoped capability over a set acquirable, bound to an
// acquisition. It embeds the acquisition, so Close, Check, Type and the
// rest of the Acquisition surface are available directly.
type Access[T collectable.Collectable[T]] struct {
	acquire.Acquisition

	view Set[T]
}

// View returns the guarded set view bound to this access's acquisition.
func (a *Access[T]) View() Set[T] {
	return a.view
}

// UnwrapAcquisition implements acquire.Wrapper, allowing an Access to be
// passed to Condition.Wait directly.
func (a *Access[T]) UnwrapAcquisition() acquire.Acquisition {
	return a.Acquisition
}

package maps

import (
	"github.com/amp-labs/amp-acquire/acquire"
	"github.com/amp-labs/amp-acquire/collectable"
	"github.com/amp-labs/amp-acquire/hashing"
)

// Acquirable guards a map behind the acquire lifecycle. It owns a mutable
// map and a read-only projection of it; read acquisitions see the
// projection, write acquisitions see the mutable map, and both are wrapped
// in guarded views bound to the acquisition.
//
// The projection and the mutable map share storage: mutations made through
// a write acquisition are observable through any live read view held by the
// same goroutine.
type Acquirable[K collectable.Collectable[K], V any] struct {
	core     *acquire.Acquirable
	mutable  Map[K, V]
	readOnly Map[K, V]
}

// NewAcquirable creates a map acquirable backed by a hash map using the
// given hash function. Initial contents, if any, are copied in.
func NewAcquirable[K collectable.Collectable[K], V any](
	hash hashing.HashFunc, initial ...KeyValuePair[K, V],
) (*Acquirable[K, V], error) {
	container := NewHashMap[K, V](hash)

	for _, kv := range initial {
		if err := container.Add(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}

	return NewAcquirableFor(container), nil
}

// NewAcquirableFor creates a map acquirable over an existing container. The
// acquirable takes ownership: the caller must not touch the container
// directly afterwards.
func NewAcquirableFor[K collectable.Collectable[K], V any](container Map[K, V]) *Acquirable[K, V] {
	return &Acquirable[K, V]{
		core:     acquire.NewAcquirable(),
		mutable:  container,
		readOnly: ReadOnly(container),
	}
}

// AcquireRead acquires the map for reading. The returned access exposes a
// guarded view of the read-only projection.
func (a *Acquirable[K, V]) AcquireRead() (*Access[K, V], error) {
	acq, err := a.core.AcquireRead()
	if err != nil {
		return nil, err
	}

	return &Access[K, V]{
		Acquisition: acq,
		view:        NewGuarded(acq, a.readOnly),
	}, nil
}

// AcquireWrite acquires the map for writing. The returned access exposes a
// guarded view of the mutable map. On a goroutine already holding a read
// acquisition the grant is upgraded in place, and the fresh access is the
// writable surface for the upgrade's scope; the earlier read view stays
// read-only.
func (a *Acquirable[K, V]) AcquireWrite() (*Access[K, V], error) {
	acq, err := a.core.AcquireWrite()
	if err != nil {
		return nil, err
	}

	return &Access[K, V]{
		Acquisition: acq,
		view:        NewGuarded(acq, a.mutable),
	}, nil
}

// NewCondition returns a condition variable bound to the map's write lock.
func (a *Acquirable[K, V]) NewCondition() *acquire.Condition {
	return a.core.NewCondition()
}

// ID returns the identity of the underlying acquirable.
func (a *Acquirable[K, V]) ID() string {
	return a.core.ID().String()
}

// Access is a scoped capability over a map acquirable, bound to an
// acquisition. It embeds the acquisition, so Close, Check, Type and the
// rest of the Acquisition surface are available directly.
type Access[K collectable.Collectable[K], V any] struct {
	acquire.Acquisition

	view Map[K, V]
}

// View returns the guarded map view bound to this access's acquisition.
func (a *Access[K, V]) View() Map[K, V] {
	return a.view
}

// UnwrapAcquisition implements acquire.Wrapper, allowing an Access to be
// passed to Condition.Wait directly.
func (a *Access[K, V]) UnwrapAcquisition() acquire.Acquisition {
	return a.Acquisition
}

package acquire

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/petermattis/goid"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/logger"
	"github.com/amp-labs/amp-acquire/upgradelock"
)

// Acquirable owns one unit of protected state: a read/write lock and a
// registry mapping goroutine ids to the root acquisition each goroutine
// currently holds. Typed acquirables embed an Acquirable and keep the
// protected state next to it.
//
// At any instant the registry holds at most one entry per goroutine, and
// the entry is always a root acquisition (one that actually holds a lock
// grant), never a reused or upgraded wrapper.
type Acquirable struct {
	id         uuid.UUID
	lock       *upgradelock.Lock
	upgradable bool

	// regMtx serializes registry mutations independently of the protected
	// lock. The protected lock is never taken while regMtx is held, except
	// for the non-blocking grant conversion during upgrade.
	regMtx   sync.Mutex
	registry map[int64]*rootAcquisition
}

// Option configures an Acquirable at construction.
type Option func(*Acquirable)

// WithoutUpgrade disables read-to-write upgrade. AcquireWrite on a goroutine
// that holds a read acquisition then fails with ErrNestedAcquire instead of
// converting the grant.
func WithoutUpgrade() Option {
	return func(a *Acquirable) {
		a.upgradable = false
	}
}

// NewAcquirable creates an acquirable with a fresh lock and an empty
// registry. Upgrade is enabled unless WithoutUpgrade is given.
func NewAcquirable(opts ...Option) *Acquirable {
	acq := &Acquirable{
		id:         uuid.New(),
		lock:       upgradelock.New(),
		upgradable: true,
		registry:   make(map[int64]*rootAcquisition),
	}

	for _, opt := range opts {
		opt(acq)
	}

	return acq
}

// ID returns the acquirable's identity, used in error and log context.
func (a *Acquirable) ID() uuid.UUID {
	return a.id
}

// NewCondition returns a condition variable bound to the acquirable's write
// lock. The condition is not tied to any particular acquisition; waiting is
// only valid while the calling goroutine holds a write acquisition.
func (a *Acquirable) NewCondition() *Condition {
	return &Condition{acq: a, cond: a.lock.NewCondition()}
}

// AcquireRead returns an acquisition permitting read operations.
//
// If the calling goroutine already holds an acquisition on this acquirable,
// a reused read wrapper sharing the outer grant is returned and no lock
// operation happens. Otherwise the call blocks until a read grant is
// available and returns a fresh root acquisition.
func (a *Acquirable) AcquireRead() (Acquisition, error) {
	gid := goid.Get()

	a.regMtx.Lock()
	if root, ok := a.registry[gid]; ok {
		a.regMtx.Unlock()
		a.logEvent("reused acquisition", Read, gid)

		return &reusedAcquisition{root: root, typ: Read}, nil
	}
	a.regMtx.Unlock()

	// Blocking grant acquisition happens outside regMtx. Only this
	// goroutine can create its own registry entry, so the re-lock below
	// cannot find one.
	stamp := a.lock.RLock()

	root := newRootAcquisition(a, gid, Read, stamp)

	a.regMtx.Lock()
	a.registry[gid] = root
	a.regMtx.Unlock()

	a.logEvent("acquired", Read, gid)

	return root, nil
}

// AcquireWrite returns an acquisition permitting read and write operations.
//
// If the calling goroutine holds no acquisition, the call blocks until the
// write grant is available and returns a fresh root acquisition. If it
// already holds a write acquisition, a reused write wrapper is returned. If
// it holds a read acquisition, the read grant is upgraded in place: the
// conversion is atomic and refuses with ErrUpgradeRefused while other
// readers are active. On an acquirable built with WithoutUpgrade, the
// nested case fails with ErrNestedAcquire.
func (a *Acquirable) AcquireWrite() (Acquisition, error) {
	gid := goid.Get()

	a.regMtx.Lock()

	root, ok := a.registry[gid]
	if !ok {
		a.regMtx.Unlock()

		stamp := a.lock.Lock()

		root = newRootAcquisition(a, gid, Write, stamp)

		a.regMtx.Lock()
		a.registry[gid] = root
		a.regMtx.Unlock()

		a.logEvent("acquired", Write, gid)

		return root, nil
	}

	if root.baseType == Write {
		a.regMtx.Unlock()
		a.logEvent("reused acquisition", Write, gid)

		return &reusedAcquisition{root: root, typ: Write}, nil
	}

	// Nested write over a read root: upgrade.
	if !a.upgradable {
		a.regMtx.Unlock()

		return nil, fmt.Errorf("%w: acquirable %s", errors.ErrNestedAcquire, a.id)
	}

	if root.upgradeDepth.Load() > 0 {
		// Already upgraded; the grant is write already.
		root.upgradeDepth.Inc()
		a.regMtx.Unlock()
		a.logEvent("nested upgrade", Write, gid)

		return newUpgradedAcquisition(root), nil
	}

	newStamp, converted := a.lock.TryConvertToWrite(root.stamp)
	if !converted {
		a.regMtx.Unlock()

		return nil, fmt.Errorf("%w: acquirable %s", errors.ErrUpgradeRefused, a.id)
	}

	root.stamp = newStamp
	root.upgradeDepth.Inc()
	a.regMtx.Unlock()

	a.logEvent("upgraded acquisition", Write, gid)

	return newUpgradedAcquisition(root), nil
}

// unregister removes the root acquisition owned by gid from the registry.
func (a *Acquirable) unregister(gid int64) {
	a.regMtx.Lock()
	delete(a.registry, gid)
	a.regMtx.Unlock()
}

func (a *Acquirable) logEvent(msg string, typ Type, gid int64) {
	logger.Debug(context.Background(), msg,
		"acquirable_id", a.id.String(),
		"goroutine", gid,
		"type", typ.String(),
	)
}

package acquire

import (
	"context"
	"fmt"

	"github.com/petermattis/goid"
	"go.uber.org/atomic"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/logger"
	"github.com/amp-labs/amp-acquire/upgradelock"
)

// rootAcquisition is the acquisition that actually holds a lock grant and is
// registered in the acquirable's per-goroutine registry. Reused and upgraded
// wrappers delegate to their root.
type rootAcquisition struct {
	acq      *Acquirable
	owner    int64
	baseType Type

	// stamp is replaced during upgrade and downgrade. It is only touched
	// by the owner goroutine, so it needs no synchronization of its own.
	stamp upgradelock.Stamp

	unlocked     *atomic.Bool
	upgradeDepth *atomic.Int32
}

func newRootAcquisition(acq *Acquirable, owner int64, typ Type, stamp upgradelock.Stamp) *rootAcquisition {
	return &rootAcquisition{
		acq:          acq,
		owner:        owner,
		baseType:     typ,
		stamp:        stamp,
		unlocked:     atomic.NewBool(false),
		upgradeDepth: atomic.NewInt32(0),
	}
}

func (r *rootAcquisition) checkOwner() error {
	if goid.Get() != r.owner {
		return fmt.Errorf("%w: acquirable %s", errors.ErrNotOwner, r.acq.id)
	}

	return nil
}

// Check implements Acquisition.
func (r *rootAcquisition) Check() error {
	if err := r.checkOwner(); err != nil {
		return err
	}

	if r.unlocked.Load() {
		return fmt.Errorf("%w: acquirable %s", errors.ErrAlreadyUnlocked, r.acq.id)
	}

	return nil
}

// Type implements Acquisition. A read root reports Write while any upgraded
// wrapper is live.
func (r *rootAcquisition) Type() Type {
	if r.baseType == Read && r.upgradeDepth.Load() > 0 {
		return Write
	}

	return r.baseType
}

// Owner implements Acquisition.
func (r *rootAcquisition) Owner() int64 {
	return r.owner
}

// IsUnlocked implements Acquisition.
func (r *rootAcquisition) IsUnlocked() (bool, error) {
	if err := r.checkOwner(); err != nil {
		return false, err
	}

	return r.unlocked.Load(), nil
}

// Close releases the lock grant and clears the registry entry. It is
// idempotent: the second and later calls from the owner return nil without
// touching the lock. Closing a root while an upgrade is still live is a
// state-machine violation and returns ErrLockInvariant; the upgraded
// wrappers must unwind first.
func (r *rootAcquisition) Close() error {
	if err := r.checkOwner(); err != nil {
		return err
	}

	if r.unlocked.Load() {
		return nil
	}

	if r.upgradeDepth.Load() > 0 {
		return fmt.Errorf("%w: root closed with %d live upgrades on acquirable %s",
			errors.ErrLockInvariant, r.upgradeDepth.Load(), r.acq.id)
	}

	r.acq.unregister(r.owner)

	if !r.acq.lock.Unlock(r.stamp) {
		panic(fmt.Errorf("%w: stale grant at close on acquirable %s", errors.ErrLockInvariant, r.acq.id))
	}

	r.unlocked.Store(true)

	logger.Debug(context.Background(), "closed acquisition",
		"acquirable_id", r.acq.id.String(),
		"goroutine", r.owner,
		"type", r.baseType.String(),
	)

	return nil
}

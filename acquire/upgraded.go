package acquire

import (
	"fmt"

	"github.com/petermattis/goid"
	"go.uber.org/atomic"

	"github.com/amp-labs/amp-acquire/errors"
)

// upgradedAcquisition is a reused acquisition that holds one level of
// read-to-write upgrade on its root. Closing it decrements the root's
// upgrade depth; the outermost close converts the write grant back to a
// read grant.
type upgradedAcquisition struct {
	root   *rootAcquisition
	closed *atomic.Bool
}

func newUpgradedAcquisition(root *rootAcquisition) *upgradedAcquisition {
	return &upgradedAcquisition{
		root:   root,
		closed: atomic.NewBool(false),
	}
}

func (u *upgradedAcquisition) checkOwner() error {
	if goid.Get() != u.root.owner {
		return fmt.Errorf("%w: acquirable %s", errors.ErrNotOwner, u.root.acq.id)
	}

	return nil
}

// Close unwinds this level of upgrade. When it is the last live upgrade, the
// root's write grant is converted back to a read grant. A failed conversion
// leaves the lock in a state that cannot be trusted, so it panics with
// ErrLockInvariant rather than returning. Close is idempotent.
func (u *upgradedAcquisition) Close() error {
	if err := u.checkOwner(); err != nil {
		return err
	}

	if !u.closed.CompareAndSwap(false, true) {
		return nil
	}

	if u.root.upgradeDepth.Dec() > 0 {
		return nil
	}

	newStamp, ok := u.root.acq.lock.ConvertToRead(u.root.stamp)
	if !ok {
		panic(fmt.Errorf("%w: write grant failed to convert back to read on acquirable %s",
			errors.ErrLockInvariant, u.root.acq.id))
	}

	u.root.stamp = newStamp

	return nil
}

// IsUnlocked implements Acquisition. Unlike a plain reused acquisition, an
// upgraded one has a real lifecycle: it reports whether its own Close has run.
func (u *upgradedAcquisition) IsUnlocked() (bool, error) {
	if err := u.checkOwner(); err != nil {
		return false, err
	}

	return u.closed.Load(), nil
}

// Check implements Acquisition. The wrapper dies with its own Close, not
// just the root's: views bound to it fail as soon as it is closed.
func (u *upgradedAcquisition) Check() error {
	if err := u.checkOwner(); err != nil {
		return err
	}

	if u.closed.Load() {
		return fmt.Errorf("%w: acquirable %s", errors.ErrAlreadyUnlocked, u.root.acq.id)
	}

	return u.root.Check()
}

// Type implements Acquisition.
func (u *upgradedAcquisition) Type() Type {
	return Write
}

// Owner implements Acquisition.
func (u *upgradedAcquisition) Owner() int64 {
	return u.root.owner
}

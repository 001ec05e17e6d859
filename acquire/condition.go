package acquire

import (
	"fmt"

	"github.com/amp-labs/amp-acquire/errors"
	"github.com/amp-labs/amp-acquire/upgradelock"
)

// Condition is a condition variable bound to an acquirable's write lock. It
// is not tied to any particular acquisition: Wait accepts whichever write
// acquisition the calling goroutine currently holds, releases the write
// grant while parked, and reacquires it before returning.
type Condition struct {
	acq  *Acquirable
	cond *upgradelock.Condition
}

// Wait parks the calling goroutine until the condition is signalled. The
// given acquisition must be a live write acquisition on this condition's
// acquirable, owned by the caller; the usual predicate loop applies, since
// wakeups can be spurious from the predicate's point of view.
func (c *Condition) Wait(acquisition Acquisition) error {
	if err := acquisition.Check(); err != nil {
		return err
	}

	if acquisition.Type() != Write {
		return fmt.Errorf("%w: condition wait without a write acquisition on acquirable %s",
			errors.ErrLockInvariant, c.acq.id)
	}

	root, err := rootOf(acquisition)
	if err != nil {
		return err
	}

	if root.acq != c.acq {
		return fmt.Errorf("%w: condition wait with an acquisition of another acquirable",
			errors.ErrLockInvariant)
	}

	// The same stamp is re-granted on wakeup, so the root stays consistent.
	_, err = c.cond.Wait(root.stamp)

	return err
}

// Signal wakes one goroutine parked on the condition, if any.
func (c *Condition) Signal() {
	c.cond.Signal()
}

// Broadcast wakes all goroutines parked on the condition.
func (c *Condition) Broadcast() {
	c.cond.Broadcast()
}

// Wrapper is implemented by typed accesses that embed an Acquisition, so
// they can be passed to Condition.Wait directly.
type Wrapper interface {
	UnwrapAcquisition() Acquisition
}

// rootOf resolves an acquisition to its root, unwrapping typed accesses.
func rootOf(acquisition Acquisition) (*rootAcquisition, error) {
	for {
		switch acq := acquisition.(type) {
		case *rootAcquisition:
			return acq, nil
		case *reusedAcquisition:
			return acq.root, nil
		case *upgradedAcquisition:
			return acq.root, nil
		default:
			wrapper, ok := acquisition.(Wrapper)
			if !ok {
				return nil, fmt.Errorf("%w: foreign acquisition type %T", errors.ErrLockInvariant, acquisition)
			}

			acquisition = wrapper.UnwrapAcquisition()
		}
	}
}

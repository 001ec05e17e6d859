package acquire

import (
	"fmt"

	"github.com/petermattis/goid"

	"github.com/amp-labs/amp-acquire/errors"
)

// reusedAcquisition is the wrapper returned when the owning goroutine
// acquires again while already holding an acquisition. It shares the root's
// grant and permission check, carries no lifecycle of its own, and its Close
// is a no-op.
type reusedAcquisition struct {
	root *rootAcquisition
	typ  Type
}

func (r *reusedAcquisition) checkOwner() error {
	if goid.Get() != r.root.owner {
		return fmt.Errorf("%w: acquirable %s", errors.ErrNotOwner, r.root.acq.id)
	}

	return nil
}

// Close implements Acquisition. The outer acquisition keeps the grant, so
// there is nothing to release.
func (r *reusedAcquisition) Close() error {
	return r.checkOwner()
}

// IsUnlocked implements Acquisition. A reused acquisition has no lifecycle;
// it always reports true.
func (r *reusedAcquisition) IsUnlocked() (bool, error) {
	if err := r.checkOwner(); err != nil {
		return false, err
	}

	return true, nil
}

// Check implements Acquisition by delegating to the root.
func (r *reusedAcquisition) Check() error {
	return r.root.Check()
}

// Type implements Acquisition.
func (r *reusedAcquisition) Type() Type {
	return r.typ
}

// Owner implements Acquisition.
func (r *reusedAcquisition) Owner() int64 {
	return r.root.owner
}

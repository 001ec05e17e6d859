package upgradelock

import (
	"fmt"
	"sync"

	"github.com/amp-labs/amp-acquire/errors"
)

// Condition is a condition variable bound to a Lock's write mode. Wait
// releases the caller's write grant while parked and reacquires it before
// returning, so the usual predicate loop applies:
//
//	stamp := lock.Lock()
//	for !ready() {
//	    stamp, err = cond.Wait(stamp)
//	}
//
// A Condition is not tied to any particular grant; it is only valid to Wait
// while holding the write grant of the lock it was created from.
type Condition struct {
	lock *Lock
	cond *sync.Cond // parked waiters; shares the lock's internal mutex
}

// NewCondition returns a condition variable bound to this lock's write mode.
func (l *Lock) NewCondition() *Condition {
	return &Condition{
		lock: l,
		cond: sync.NewCond(&l.mtx),
	}
}

// Wait atomically releases the write grant named by stamp, parks until the
// condition is signalled, then reacquires the write grant before returning.
// The stamp remains the caller's handle across the wait.
//
// Returns ErrLockInvariant (wrapped) if stamp does not name a live write
// grant of the condition's lock.
func (c *Condition) Wait(stamp Stamp) (Stamp, error) {
	l := c.lock

	l.mtx.Lock()

	if l.grants[stamp] != ModeWrite {
		l.mtx.Unlock()

		return 0, fmt.Errorf("%w: condition wait without the write lock", errors.ErrLockInvariant)
	}

	// Release the write grant while parked. The stamp entry is removed so
	// an Unlock from another goroutine cannot race the wait; the same stamp
	// is re-granted after reacquisition.
	delete(l.grants, stamp)
	l.writer = false
	l.cond.Broadcast()

	c.cond.Wait()

	for l.writer || l.readers > 0 {
		l.cond.Wait()
	}

	l.writer = true
	l.grants[stamp] = ModeWrite
	l.mtx.Unlock()

	return stamp, nil
}

// Signal wakes one goroutine parked on the condition, if any.
func (c *Condition) Signal() {
	c.lock.mtx.Lock()
	defer c.lock.mtx.Unlock()

	c.cond.Signal()
}

// Broadcast wakes all goroutines parked on the condition.
func (c *Condition) Broadcast() {
	c.lock.mtx.Lock()
	defer c.lock.mtx.Unlock()

	c.cond.Broadcast()
}

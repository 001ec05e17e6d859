// Package errors provides the error taxonomy for acquirables and guarded
// views, plus a collection utility for accumulating multiple errors.
package errors //nolint:revive // This is a fine package name, nuts to you

import "errors"

var (
	// ErrNotOwner is returned when an acquisition operation is attempted
	// from a goroutine other than the one that created the acquisition.
	// Acquisitions are pinned to their creating goroutine for their entire
	// lifetime; sharing one (or a view bound to one) across goroutines is
	// never valid, even if the other goroutine holds its own acquisition
	// on the same acquirable.
	ErrNotOwner = errors.New("acquisition owned by another goroutine")

	// ErrAlreadyUnlocked is returned when an operation is attempted on an
	// acquisition (or a guarded view bound to it) after the acquisition
	// has been closed.
	ErrAlreadyUnlocked = errors.New("acquisition already unlocked")

	// ErrNilValue is returned when a non-nil reference cell receives a nil
	// value, either at construction or through Set.
	ErrNilValue = errors.New("nil value")

	// ErrUpgradeRefused is returned when a read-to-write lock conversion
	// fails because other readers are still active. The read acquisition
	// remains valid and unchanged.
	ErrUpgradeRefused = errors.New("read to write upgrade refused")

	// ErrNestedAcquire is returned when a write acquisition is requested
	// while the goroutine holds a read acquisition on an acquirable that
	// was constructed without upgrade support.
	ErrNestedAcquire = errors.New("write acquire nested in read acquisition")

	// ErrLockInvariant indicates internal lock state corruption, for
	// example a write stamp that fails to convert back to a read stamp at
	// close. When the lock's own state can no longer be trusted (a failed
	// downgrade or a stale grant at close) the operation panics with it.
	// Misuse that is detected before the lock is touched, such as closing a
	// root acquisition under a live upgrade or waiting on a condition
	// without a write acquisition, returns it as an error instead.
	ErrLockInvariant = errors.New("lock invariant violation")

	// ErrReadOnlyAcquisition is returned when a mutating operation is
	// attempted through an acquisition of read type.
	ErrReadOnlyAcquisition = errors.New("write operation on read acquisition")

	// ErrReadOnlyView is returned when a mutating operation is attempted
	// on a read-only container projection.
	ErrReadOnlyView = errors.New("mutation of read-only view")

	// ErrHashCollision is returned when two distinct keys produce the same
	// hash value. This error indicates that the hash function is not
	// suitable for the given key space. When this error occurs, consider
	// using a different hash function.
	ErrHashCollision = errors.New("hashing collision")

	// ErrIndexOutOfRange is returned by list operations when the given
	// index is outside the valid range of the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as
// a single combined error. Use this when you need to collect errors from
// multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

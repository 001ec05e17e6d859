package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-acquire/errors"
)

// TestCondition exercises the condition factory end to end: a consumer waits
// under the write lock for a flag to flip, a producer flips it and signals.
func TestCondition(t *testing.T) {
	t.Parallel()

	cell := NewBool(false)
	cond := cell.NewCondition()

	consumed := make(chan bool, 1)

	go func() {
		access, err := cell.AcquireWrite()
		if err != nil {
			consumed <- false

			return
		}

		for {
			ready, err := access.Get()
			if err != nil {
				consumed <- false

				return
			}

			if ready {
				break
			}

			if err := cond.Wait(access); err != nil {
				consumed <- false

				return
			}
		}

		_ = access.Close()
		consumed <- true
	}()

	// Give the consumer a chance to park, then flip the flag.
	time.Sleep(20 * time.Millisecond)

	producer, err := cell.AcquireWrite()
	require.NoError(t, err)

	require.NoError(t, producer.Set(true))
	require.NoError(t, producer.Close())

	cond.Broadcast()

	select {
	case ok := <-consumed:
		assert.True(t, ok, "consumer observed the flipped flag")
	case <-time.After(5 * time.Second):
		t.Fatal("consumer never woke up")
	}
}

// TestCondition_RequiresWriteAcquisition verifies waiting without the write
// lock is rejected.
func TestCondition_RequiresWriteAcquisition(t *testing.T) {
	t.Parallel()

	cell := NewInt(0)
	cond := cell.NewCondition()

	access, err := cell.AcquireRead()
	require.NoError(t, err)

	defer func() { require.NoError(t, access.Close()) }()

	require.ErrorIs(t, cond.Wait(access), errors.ErrLockInvariant)
}

package scheduler

import (
	"errors"
	"fmt"

	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// ErrNotOwner tags a release attempted by a process that does not own the
// resource. This is a precondition violation: the driver aborts the run.
var ErrNotOwner = errors.New("scheduler: release by non-owner")

// ErrUnknownResource tags an acquire/release against a resource id outside
// the table.
var ErrUnknownResource = errors.New("scheduler: unknown resource")

// acquireFCFS is the default resource acquisition: grant immediately when
// the resource is free, otherwise block the current process at the tail of
// the wait queue, strictly in arrival order and without looking at priority.
func acquireFCFS(st *execution.State, resourceID int) bool {
	r := st.Resources.Get(resourceID)
	if r == nil {
		return false
	}
	if !r.Held() {
		r.Owner = st.Current
		return true
	}
	cur := st.CurrentProcess()
	cur.Status = proc.StatusWaiting
	cur.WaitingOn = resourceID
	r.Waiters.Push(st.Current)
	return false
}

// releaseFCFS is the default release: clear ownership and wake the oldest
// waiter, if any, back into the ready queue. The released resource is not
// re-granted here; the woken process re-attempts acquisition on a later
// tick.
func releaseFCFS(st *execution.State, resourceID int) error {
	r := st.Resources.Get(resourceID)
	if r == nil {
		return fmt.Errorf("%w: %d", ErrUnknownResource, resourceID)
	}
	if r.Owner != st.Current {
		cur := st.CurrentProcess()
		id := -1
		if cur != nil {
			id = cur.ID
		}
		return fmt.Errorf("%w: resource %d released by process %d", ErrNotOwner, resourceID, id)
	}
	r.Owner = proc.None
	if h, ok := r.Waiters.Pop(); ok {
		waiter := st.Arena.Get(h)
		waiter.Status = proc.StatusReady
		waiter.WaitingOn = -1
		st.Ready.Push(h)
	}
	return nil
}

// fcfsArbiter is embedded by every policy that does not need priority-aware
// locking.
type fcfsArbiter struct{}

func (fcfsArbiter) Acquire(st *execution.State, resourceID int) bool {
	return acquireFCFS(st, resourceID)
}

func (fcfsArbiter) Release(st *execution.State, resourceID int) error {
	return releaseFCFS(st, resourceID)
}

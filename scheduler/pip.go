package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// pip is the priority policy augmented with the priority inheritance
// protocol: when a process blocks on a held resource, the holder inherits
// the blocked process's priority for the duration of the hold, transitively
// along the chain when the holder is itself blocked. On release the holder
// falls back to the best priority still owed to waiters of resources it
// continues to hold, or to its original priority when none remain.
type pip struct {
	lifecycle
}

// NewPIP creates the priority-inheritance policy.
func NewPIP() Policy { return &pip{} }

func (pip) Name() string { return "Priority+PIP" }

func (pip) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		cur.Status = proc.StatusReady
		st.Ready.Push(st.Current)
		st.Current = proc.None
	}
	return popHighestPriority(st)
}

func (pip) Acquire(st *execution.State, resourceID int) bool {
	if acquireFCFS(st, resourceID) {
		return true
	}
	requester := st.CurrentProcess()
	// Walk the ownership chain: the direct holder inherits the requester's
	// priority, and when that holder is itself blocked the inheritance
	// propagates to whoever it waits on.
	id := resourceID
	for seen := 0; seen <= st.Arena.Len(); seen++ {
		r := st.Resources.Get(id)
		if r == nil || !r.Held() {
			return false
		}
		holder := st.Arena.Get(r.Owner)
		if holder.Priority > requester.Priority {
			holder.Priority = requester.Priority
		}
		if holder.Status != proc.StatusWaiting || holder.WaitingOn < 0 {
			return false
		}
		id = holder.WaitingOn
	}
	return false
}

func (pip) Release(st *execution.State, resourceID int) error {
	holder := st.Current
	if err := releaseFCFS(st, resourceID); err != nil {
		return err
	}
	cur := st.Arena.Get(holder)
	cur.Priority = owedPriority(st, holder)
	return nil
}

// owedPriority computes the priority a process is entitled to after a
// release: its original priority, improved by the best priority among the
// processes still blocked on resources it keeps holding.
func owedPriority(st *execution.State, h proc.Handle) int {
	p := st.Arena.Get(h)
	best := p.OriginalPriority
	for _, r := range st.Resources.OwnedBy(h) {
		for _, wh := range r.Waiters.Handles() {
			if waiter := st.Arena.Get(wh); waiter.Priority < best {
				best = waiter.Priority
			}
		}
	}
	return best
}

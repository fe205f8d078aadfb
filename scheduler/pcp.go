package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// pcp is the priority policy augmented with the priority ceiling protocol:
// while a process holds a resource its priority is raised to the resource's
// static ceiling, bounding how long a higher-priority process can be kept
// waiting. Scheduling re-evaluates priorities every tick so that a ceiling
// boost takes effect immediately.
type pcp struct {
	lifecycle
}

// NewPCP creates the priority-ceiling policy.
func NewPCP() Policy { return &pcp{} }

func (pcp) Name() string { return "Priority+PCP" }

func (pcp) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		cur.Status = proc.StatusReady
		st.Ready.Push(st.Current)
		st.Current = proc.None
	}
	return popHighestPriority(st)
}

func (pcp) Acquire(st *execution.State, resourceID int) bool {
	if !acquireFCFS(st, resourceID) {
		return false
	}
	r := st.Resources.Get(resourceID)
	cur := st.CurrentProcess()
	// Numerically greater means worse: raise the holder to the ceiling.
	if cur.Priority > r.Ceiling {
		cur.Priority = r.Ceiling
	}
	return true
}

func (pcp) Release(st *execution.State, resourceID int) error {
	cur := st.CurrentProcess()
	if err := releaseFCFS(st, resourceID); err != nil {
		return err
	}
	// OriginalPriority is the ground truth, restored unconditionally.
	cur.Priority = cur.OriginalPriority
	return nil
}

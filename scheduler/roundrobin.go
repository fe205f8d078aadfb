package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// roundRobin time-slices the CPU with a one-tick quantum: the rotation
// happens on every call, not only on quantum expiry. A still-runnable
// current process re-enters the ready queue at the tail before the head is
// taken, which degenerates to a no-op rotation when only one process exists.
type roundRobin struct {
	lifecycle
	fcfsArbiter
}

// NewRoundRobin creates the round-robin policy.
func NewRoundRobin() Policy { return &roundRobin{} }

func (roundRobin) Name() string { return "Round-Robin" }

func (roundRobin) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		cur.Status = proc.StatusReady
		st.Ready.Push(st.Current)
		st.Current = proc.None
	}
	h, ok := st.Ready.Pop()
	if !ok {
		return proc.None
	}
	return h
}

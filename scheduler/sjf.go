package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// sjf picks the ready process with the smallest static execution estimate
// and runs it to completion; the estimate is never re-evaluated mid-run.
type sjf struct {
	lifecycle
	fcfsArbiter
}

// NewSJF creates the shortest-job-first policy.
func NewSJF() Policy { return &sjf{} }

func (sjf) Name() string { return "SJF" }

func (sjf) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		return st.Current
	}
	best := proc.None
	for _, h := range st.Ready.Handles() {
		p := st.Arena.Get(h)
		// Strict less-than: ties go to the earliest queued process.
		if !best.Valid() || p.Burst < st.Arena.Get(best).Burst {
			best = h
		}
	}
	if best.Valid() {
		st.Ready.Remove(best)
	}
	return best
}

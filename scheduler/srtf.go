package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// srtf is the preemptive variant of SJF: every tick it re-scans all runnable
// processes comparing remaining execution time, which may switch the CPU
// away from the current process.
type srtf struct {
	lifecycle
	fcfsArbiter
}

// NewSRTF creates the shortest-remaining-time-first policy.
func NewSRTF() Policy { return &srtf{} }

func (srtf) Name() string { return "SRTF" }

func (srtf) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		cur.Status = proc.StatusReady
		st.Ready.Push(st.Current)
		st.Current = proc.None
	}
	best := proc.None
	for _, h := range st.Ready.Handles() {
		p := st.Arena.Get(h)
		if !best.Valid() || p.Remaining < st.Arena.Get(best).Remaining {
			best = h
		}
	}
	if best.Valid() {
		st.Ready.Remove(best)
	}
	return best
}

// Forked makes sure a newly admitted process starts with its full execution
// estimate as remaining time.
func (srtf) Forked(st *execution.State, h proc.Handle) {
	if p := st.Arena.Get(h); p != nil && p.Remaining == 0 && p.Age == 0 {
		p.Remaining = p.Burst
	}
}

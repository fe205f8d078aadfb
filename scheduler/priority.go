package scheduler

import (
	"github.com/viant/ticksim/model/proc"
	"github.com/viant/ticksim/runtime/execution"
)

// PriorityOptions parametrises the priority policy. Preemptive controls
// whether the arrival of a higher-priority process can take the CPU away
// from the current one; classical static-priority scheduling as simulated
// here selects once and runs to completion, so the default is false.
type PriorityOptions struct {
	Preemptive bool `json:"preemptive" yaml:"preemptive"`
}

// priority selects the ready process with the numerically smallest priority
// value; priority 0 is the highest. Ties go to the earliest queued process.
type priority struct {
	lifecycle
	fcfsArbiter
	preemptive bool
}

// NewPriority creates the static priority policy.
func NewPriority(options *PriorityOptions) Policy {
	p := &priority{}
	if options != nil {
		p.preemptive = options.Preemptive
	}
	return p
}

func (priority) Name() string { return "Priority" }

func (p *priority) Schedule(st *execution.State) proc.Handle {
	if cur := st.CurrentProcess(); cur != nil && cur.Runnable() {
		if !p.preemptive {
			return st.Current
		}
		cur.Status = proc.StatusReady
		st.Ready.Push(st.Current)
		st.Current = proc.None
	}
	return popHighestPriority(st)
}

// popHighestPriority detaches and returns the ready process with the best
// (numerically smallest) current priority, proc.None when the queue is
// empty. Strict less-than keeps ties in insertion order.
func popHighestPriority(st *execution.State) proc.Handle {
	best := proc.None
	for _, h := range st.Ready.Handles() {
		p := st.Arena.Get(h)
		if !best.Valid() || p.Priority < st.Arena.Get(best).Priority {
			best = h
		}
	}
	if best.Valid() {
		st.Ready.Remove(best)
	}
	return best
}
